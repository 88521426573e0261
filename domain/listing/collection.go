package listing

import (
	"fmt"

	"github.com/x-xyz/listingsync/domain"
)

// collectionNames labels the edition drop token ids. Display only.
var collectionNames = map[domain.TokenId]string{
	"0": "Founders Pass",
	"1": "Early Adopter",
	"2": "Gasless Pioneer",
	"3": "Session Keeper",
	"4": "Batch Master",
	"5": "Multichain Explorer",
	"6": "Smart Wallet Badge",
	"7": "Paymaster Patron",
	"8": "Bundler Badge",
	"9": "Marketplace Maker",
}

// CollectionDisplayName resolves the label of tokenId, "NFT #<id>" when unknown.
func CollectionDisplayName(tokenId domain.TokenId) string {
	if name, ok := collectionNames[tokenId]; ok {
		return name
	}
	return fmt.Sprintf("NFT #%s", tokenId)
}
