package repository

import (
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/database/mongoclient"
	"github.com/x-xyz/listingsync/base/database/redisclient"
	"github.com/x-xyz/listingsync/base/metrics"
	"github.com/x-xyz/listingsync/base/ptr"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/listing"
	"github.com/x-xyz/listingsync/service/query"
	"github.com/x-xyz/listingsync/service/redis"
)

var (
	mockCtx = ctx.Background()
	baseAt  = time.Unix(1700000000, 0).UTC()
)

// repoSuite runs the same behaviour against every backend
type repoSuite struct {
	suite.Suite

	newRepo func() listing.Repo
	repo    listing.Repo
}

func (s *repoSuite) SetupTest() {
	s.repo = s.newRepo()
}

func newRecord(id string, minutes int, seller domain.Address, tokenId domain.TokenId, price string) *listing.Listing {
	return &listing.Listing{
		Id:             id,
		Seller:         seller,
		AssetContract:  "0xEditionDrop",
		TokenId:        tokenId,
		CollectionName: listing.CollectionDisplayName(tokenId),
		Price:          price,
		Quantity:       1,
		Timestamp:      baseAt.Add(time.Duration(minutes) * time.Minute).Format(time.RFC3339),
		Status:         listing.StatusActive,
		CreatedAt:      baseAt.Add(time.Duration(minutes) * time.Minute),
		UpdatedAt:      baseAt.Add(time.Duration(minutes) * time.Minute),
	}
}

func ids(ls []*listing.Listing) []string {
	res := []string{}
	for _, l := range ls {
		res = append(res, l.Id)
	}
	return res
}

func (s *repoSuite) seed() {
	a := newRecord("listing-a", 0, "0xAAAA", "0", "0.5")
	a.OnChainListingId = ptr.Int64(1)
	b := newRecord("listing-b", 1, "0xBBBB", "4", "0.1")
	b.OnChainListingId = ptr.Int64(2)
	c := newRecord("listing-c", 2, "0xaaaa", "4", "0.3")
	d := newRecord("listing-d", 3, "0xAaAa", "2", "0.2")
	d.OnChainListingId = ptr.Int64(4)
	for _, l := range []*listing.Listing{a, b, c, d} {
		s.Require().NoError(s.repo.Create(mockCtx, l))
	}
}

func (s *repoSuite) TestCreateAndFindOne() {
	s.seed()

	l, err := s.repo.FindOne(mockCtx, "listing-a")
	s.Require().NoError(err)
	s.Equal(domain.Address("0xaaaa"), l.Seller)
	s.Equal(domain.Address("0xeditiondrop"), l.AssetContract)
	s.Equal("Founders Pass", l.CollectionName)
	s.Equal(listing.StatusActive, l.Status)
	s.Require().NotNil(l.OnChainListingId)
	s.Equal(int64(1), *l.OnChainListingId)

	_, err = s.repo.FindOne(mockCtx, "listing-missing")
	s.Equal(domain.ErrNotFound, err)

	s.Equal(domain.ErrConflict, s.repo.Create(mockCtx, newRecord("listing-a", 9, "0x1", "1", "1")))
}

func (s *repoSuite) TestCreateDuplicateOnChainId() {
	s.seed()

	dup := newRecord("listing-e", 4, "0xCCCC", "7", "0.4")
	dup.OnChainListingId = ptr.Int64(2)
	s.Equal(domain.ErrConflict, s.repo.Create(mockCtx, dup))

	_, err := s.repo.FindOne(mockCtx, "listing-e")
	s.Equal(domain.ErrNotFound, err)
	ls, err := s.repo.FindAll(mockCtx, listing.WithOnChainListingId(2))
	s.Require().NoError(err)
	s.Equal([]string{"listing-b"}, ids(ls))

	// records without an on-chain id never collide
	s.Require().NoError(s.repo.Create(mockCtx, newRecord("listing-f", 5, "0xCCCC", "7", "0.4")))
}

func (s *repoSuite) TestConcurrentCreateSameOnChainId() {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l := newRecord("listing-race-"+strconv.Itoa(i), i, "0xAAAA", "0", "0.5")
			l.OnChainListingId = ptr.Int64(9)
			err := s.repo.Create(mockCtx, l)
			if err != nil && err != domain.ErrConflict {
				s.Fail("unexpected error", err.Error())
			}
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	s.Equal(1, created)
	ls, err := s.repo.FindAll(mockCtx, listing.WithOnChainListingId(9))
	s.Require().NoError(err)
	s.Len(ls, 1)
}

func (s *repoSuite) TestFindAll() {
	s.seed()

	ls, err := s.repo.FindAll(mockCtx, listing.WithStatus(listing.StatusActive))
	s.Require().NoError(err)
	s.Equal([]string{"listing-d", "listing-c", "listing-b", "listing-a"}, ids(ls))

	ls, err = s.repo.FindAll(mockCtx, listing.WithStatus(listing.StatusActive), listing.WithSort(listing.SortByPriceLow))
	s.Require().NoError(err)
	s.Equal([]string{"listing-b", "listing-d", "listing-c", "listing-a"}, ids(ls))

	ls, err = s.repo.FindAll(mockCtx, listing.WithStatus(listing.StatusActive), listing.WithSeller("0xAAAA"))
	s.Require().NoError(err)
	s.Equal([]string{"listing-d", "listing-c", "listing-a"}, ids(ls))

	ls, err = s.repo.FindAll(mockCtx, listing.WithStatus(listing.StatusActive), listing.WithSearch("batch"))
	s.Require().NoError(err)
	s.Equal([]string{"listing-c", "listing-b"}, ids(ls))

	ls, err = s.repo.FindAll(mockCtx, listing.WithOnChainListingId(4))
	s.Require().NoError(err)
	s.Equal([]string{"listing-d"}, ids(ls))

	ls, err = s.repo.FindAll(mockCtx, listing.WithStatus(listing.StatusActive), listing.WithPagination(1, 2))
	s.Require().NoError(err)
	s.Equal([]string{"listing-c", "listing-b"}, ids(ls))
}

func (s *repoSuite) TestUpdateStatus() {
	s.seed()

	l, changed, err := s.repo.UpdateStatus(mockCtx, "listing-b", listing.StatusSold)
	s.Require().NoError(err)
	s.True(changed)
	s.Equal(listing.StatusSold, l.Status)

	_, changed, err = s.repo.UpdateStatus(mockCtx, "listing-b", listing.StatusSold)
	s.Require().NoError(err)
	s.False(changed)

	_, changed, err = s.repo.UpdateStatus(mockCtx, "listing-b", listing.StatusCancelled)
	s.Equal(domain.ErrInvalidStatusTransition, err)
	s.False(changed)

	_, _, err = s.repo.UpdateStatus(mockCtx, "listing-b", listing.StatusActive)
	s.Equal(domain.ErrInvalidStatusTransition, err)

	_, _, err = s.repo.UpdateStatus(mockCtx, "listing-missing", listing.StatusSold)
	s.Equal(domain.ErrNotFound, err)

	ls, err := s.repo.FindAll(mockCtx, listing.WithStatus(listing.StatusActive))
	s.Require().NoError(err)
	s.Equal([]string{"listing-d", "listing-c", "listing-a"}, ids(ls))

	ls, err = s.repo.FindAll(mockCtx, listing.WithStatus(listing.StatusSold))
	s.Require().NoError(err)
	s.Equal([]string{"listing-b"}, ids(ls))
}

func (s *repoSuite) TestConcurrentUpdateStatus() {
	s.seed()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		changes int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			target := listing.StatusSold
			if i%2 == 0 {
				target = listing.StatusCancelled
			}
			_, changed, err := s.repo.UpdateStatus(mockCtx, "listing-a", target)
			if err != nil && err != domain.ErrInvalidStatusTransition {
				s.Fail("unexpected error", err.Error())
			}
			if changed {
				mu.Lock()
				changes++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	s.Equal(1, changes)
	l, err := s.repo.FindOne(mockCtx, "listing-a")
	s.Require().NoError(err)
	s.NotEqual(listing.StatusActive, l.Status)
}

func TestMemoryRepo(t *testing.T) {
	suite.Run(t, &repoSuite{newRepo: NewMemoryRepo})
}

func TestMongoRepo(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	client := mongoclient.MustConnectMongoClient(mongoclient.Config{Uri: uri, DBName: "listingsync_test"})
	q := query.New(client, false)
	suite.Run(t, &repoSuite{newRepo: func() listing.Repo {
		client.DbName = "listingsync_test_" + uuid.New().String()[:8]
		repo, err := NewMongoRepo(mockCtx, q)
		if err != nil {
			t.Fatal(err)
		}
		return repo
	}})
}

func TestRedisRepo(t *testing.T) {
	uri := os.Getenv("REDIS_TEST_URI")
	if uri == "" {
		t.Skip("REDIS_TEST_URI not set")
	}
	pool := redisclient.MustConnectRedis(uri, "", redisclient.RedisParam{PoolMultiplier: 1, DB: 15})
	svc := redis.New("test", metrics.New("test"), &redis.Pools{Src: pool})
	suite.Run(t, &repoSuite{newRepo: func() listing.Repo {
		conn := pool.Get()
		defer conn.Close()
		if _, err := conn.Do("FLUSHDB"); err != nil {
			t.Fatal(err)
		}
		return NewRedisRepo(svc)
	}})
}
