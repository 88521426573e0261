package query

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/listingsync/domain"
)

func TestGetSortOption(t *testing.T) {
	require.Equal(t, bson.D{}, getSortOption(""))
	require.Equal(t, bson.D{{Key: "createdAt", Value: domain.SortDirDesc}}, getSortOption("-createdAt"))
	require.Equal(t, bson.D{
		{Key: "priceValue", Value: domain.SortDirAsc},
		{Key: "createdAt", Value: domain.SortDirDesc},
	}, getSortOption("priceValue, -createdAt"))
}
