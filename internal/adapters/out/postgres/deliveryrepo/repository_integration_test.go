package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/deliveryrepo"
	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// DeliveryRepositoryIntegrationTestSuite provides integration tests for
// DeliveryRepository using PostgreSQL containers to verify database
// persistence behavior.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_ValidDelivery_Success() {
	ctx := context.Background()

	testDelivery := suite.createTestDelivery()
	suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery).Once()

	err := suite.repository.Add(ctx, testDelivery)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Table("deliveries").Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_ExistingDelivery_RoundTrips() {
	ctx := context.Background()

	original := suite.createTestDelivery()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.True(original.OrderID().IsEqual(retrieved.OrderID()))
	suite.Equal(delivery.DefaultPartnerID, retrieved.PartnerID())
	suite.Equal(delivery.Assigned, retrieved.Status())
	suite.Equal(delivery.DefaultEstimatedTimeMinutes, retrieved.EstimatedTime())
	suite.Nil(retrieved.CurrentLocation())
	suite.WithinDuration(original.CreatedAt(), retrieved.CreatedAt(), time.Millisecond)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_NonExistentDelivery_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetByOrderID_ExistingDelivery_Success() {
	ctx := context.Background()

	original := suite.createTestDelivery()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByOrderID(ctx, original.OrderID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetByOrderID_NoDelivery_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetByOrderID(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_Progression_Persists() {
	ctx := context.Background()

	testDelivery := suite.createTestDelivery()
	suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery)
	suite.Require().NoError(suite.repository.Add(ctx, testDelivery))

	suite.Require().NoError(testDelivery.PickUp())
	suite.Require().NoError(suite.repository.Update(ctx, testDelivery))

	retrieved, err := suite.repository.Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.PickedUp, retrieved.Status())

	suite.Require().NoError(testDelivery.Complete())
	suite.Require().NoError(suite.repository.Update(ctx, testDelivery))

	retrieved, err = suite.repository.Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Delivered, retrieved.Status())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_ReportedLocation_RoundTrips() {
	ctx := context.Background()

	testDelivery := suite.createTestDelivery()
	suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery)
	suite.Require().NoError(suite.repository.Add(ctx, testDelivery))

	position, err := kernel.NewGeoPoint(40.7128, -74.0060)
	suite.Require().NoError(err)
	suite.Require().NoError(testDelivery.ReportLocation(position))
	suite.Require().NoError(suite.repository.Update(ctx, testDelivery))

	retrieved, err := suite.repository.Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.CurrentLocation())
	suite.InDelta(40.7128, retrieved.CurrentLocation().Lat(), 1e-9)
	suite.InDelta(-74.0060, retrieved.CurrentLocation().Lng(), 1e-9)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_NonExistentDelivery_Fails() {
	ctx := context.Background()

	testDelivery := suite.createTestDelivery()

	err := suite.repository.Update(ctx, testDelivery)
	suite.Require().Error(err)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) createTestDelivery() *delivery.Delivery {
	testDelivery, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)
	return testDelivery
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
