package queries_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type trackerStub struct{}

func (trackerStub) TrackAggregate(_ kernel.UUID, _ any) {}

type GetUserOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetUserOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetUserOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.handler = queries.NewGetUserOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, trackerStub{})
}

func (suite *GetUserOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_ReturnsCustomerOrdersOnly() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	first := suite.addOrder(ctx, customerID, order.Placed)
	second := suite.addOrder(ctx, customerID, order.Confirmed)
	suite.addOrder(ctx, kernel.NewUUID(), order.Placed) // different customer

	query, err := queries.NewGetUserOrdersQuery(customerID)
	suite.Require().NoError(err)

	responses, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(responses, 2)

	byID := make(map[string]queries.GetUserOrdersQueryResponse, len(responses))
	for _, resp := range responses {
		byID[resp.ID.String()] = resp
	}

	placed, ok := byID[first.ID().String()]
	suite.Require().True(ok)
	suite.Equal("PLACED", placed.Status)
	suite.Equal("resto-42", placed.RestaurantID)
	suite.InDelta(19.98, placed.TotalAmount, 1e-9)
	suite.Require().Len(placed.Items, 2)
	suite.Equal("menu-1", placed.Items[0].MenuItemID)
	suite.Equal(2, placed.Items[0].Quantity)
	suite.InDelta(5.00, placed.Items[0].Price, 1e-9)

	confirmed, ok := byID[second.ID().String()]
	suite.Require().True(ok)
	suite.Equal("CONFIRMED", confirmed.Status)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_NoOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	query, err := queries.NewGetUserOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	responses, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(responses)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_UnconstructedQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetUserOrdersQuery{})

	suite.Require().Error(err)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) addOrder(
	ctx context.Context, customerID kernel.UUID, status order.Status,
) *order.Order {
	burger, err := order.NewItem("menu-1", "Burger", 2, 5.00)
	suite.Require().NoError(err)
	shake, err := order.NewItem("menu-2", "Shake", 1, 9.98)
	suite.Require().NoError(err)

	now := time.Now().UTC()
	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, "resto-42",
		[]order.Item{burger, shake}, 19.98, status, now, now,
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))
	return testOrder
}

func TestGetUserOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetUserOrdersQueryHandlerTestSuite))
}
