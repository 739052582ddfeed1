package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockTablesProvider мок источника таблиц
type MockTablesProvider struct {
	mock.Mock
}

func (m *MockTablesProvider) Tables(ctx context.Context) (*Tables, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Tables), args.Error(1)
}

type ServiceTestSuite struct {
	suite.Suite
	provider *MockTablesProvider
	service  Service
	tables   *Tables
}

func (s *ServiceTestSuite) SetupTest() {
	s.provider = new(MockTablesProvider)
	s.service = NewService(s.provider, &fixedRandom{}, func() time.Time { return testNow })
	s.tables = &Tables{
		Customers: sampleCustomers(),
		History: []Transaction{
			tx("user_1", "Sementes", 700, daysAgo(20)),
			tx("user_1", "Defensivos", 300, daysAgo(100)),
			tx("user_1", "Sementes", 900, daysAgo(300)),
			tx("user_2", "Sementes", 50, daysAgo(3)),
		},
		Candidates: []RecommendationCandidate{
			{UserID: "user_1", RecID: "item_1"},
			{UserID: "user_1", RecID: "item_2"},
			{UserID: "user_1", RecID: "item_3"},
		},
		Products: []Product{
			{ItemID: "item_1", ItemDesc: "Semente Milho", ItemClass: "Sementes"},
			{ItemID: "item_2", ItemDesc: "Fungicida", ItemClass: "Defensivos"},
			{ItemID: "item_3", ItemDesc: "Semente Milho", ItemClass: "Sementes"},
		},
		Rules: []AssociationRule{
			{Antecedents: "item_9", Consequent: "item_2", Lift: floatPtr(5.0), Confidence: floatPtr(0.9)},
		},
		Report: LoadReport{RulesAvailable: true, Customers: 4},
	}
}

func (s *ServiceTestSuite) TestGetHistoryAppliesWindow() {
	s.provider.On("Tables", mock.Anything).Return(s.tables, nil)

	history, err := s.service.GetHistory(context.Background(), "user_1", 6)

	s.Require().NoError(err)
	s.Len(history, 2)
	s.provider.AssertExpectations(s.T())
}

func (s *ServiceTestSuite) TestGetMetrics() {
	s.provider.On("Tables", mock.Anything).Return(s.tables, nil)

	metrics, err := s.service.GetMetrics(context.Background(), "user_1", 12)

	s.Require().NoError(err)
	s.Equal(3, metrics.Frequencia)
	s.InDelta(1900.0, metrics.ValorTotal, 1e-9)
	s.Equal("Sementes", metrics.CategoriaTop)
	s.InDelta(700.0, metrics.UltimoMes, 1e-9)
}

func (s *ServiceTestSuite) TestGetABC() {
	s.provider.On("Tables", mock.Anything).Return(s.tables, nil)

	entries, err := s.service.GetABC(context.Background(), "user_1", 6)

	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("Sementes", entries[0].Categoria)
	s.Equal(ClassA, entries[0].Curva)
	s.Equal(ClassC, entries[1].Curva)
}

func (s *ServiceTestSuite) TestGetRecommendationsRankedAndDeduplicated() {
	s.provider.On("Tables", mock.Anything).Return(s.tables, nil)

	recs, err := s.service.GetRecommendations(context.Background(), "user_1", 3)

	s.Require().NoError(err)
	s.Require().Len(recs, 2)
	s.Equal("item_2", recs[0].RecID)
	s.Equal(SourceReal, recs[0].LiftSource)
	s.Equal("item_1", recs[1].RecID)
	s.Equal(FallbackReason, recs[1].Razao)
}

func (s *ServiceTestSuite) TestUnknownCustomer() {
	s.provider.On("Tables", mock.Anything).Return(s.tables, nil)

	_, err := s.service.GetHistory(context.Background(), "user_99", 6)

	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *ServiceTestSuite) TestInvalidArguments() {
	_, err := s.service.GetHistory(context.Background(), "user_1", 0)
	s.ErrorIs(err, ErrInvalidWindow)

	_, err = s.service.GetRecommendations(context.Background(), "user_1", 51)
	s.ErrorIs(err, ErrInvalidTopN)

	_, err = s.service.GetCustomer(context.Background(), "  ")
	s.ErrorIs(err, ErrInvalidCustomerID)

	s.provider.AssertNotCalled(s.T(), "Tables", mock.Anything)
}

func (s *ServiceTestSuite) TestTablesUnavailable() {
	loadErr := errors.New("open clientes_df.csv: no such file or directory")
	s.provider.On("Tables", mock.Anything).Return(nil, loadErr)

	_, _, err := s.service.ListCustomers(context.Background(), CustomerFilter{})

	s.ErrorIs(err, ErrTablesUnavailable)
	s.ErrorIs(err, loadErr)
}

func (s *ServiceTestSuite) TestListCustomersAndReport() {
	s.provider.On("Tables", mock.Anything).Return(s.tables, nil)

	customers, total, err := s.service.ListCustomers(context.Background(), CustomerFilter{UF: "GO"})
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Len(customers, 2)

	report, err := s.service.GetLoadReport(context.Background())
	s.Require().NoError(err)
	s.True(report.RulesAvailable)
	s.False(report.Degraded())
}

func (s *ServiceTestSuite) TestBuildDashboardReadsClockOnce() {
	s.provider.On("Tables", mock.Anything).Return(s.tables, nil).Once()

	calls := 0
	svc := NewService(s.provider, &fixedRandom{}, func() time.Time {
		calls++
		return testNow.Add(time.Duration(calls-1) * 24 * time.Hour)
	})

	d, err := svc.BuildDashboard(context.Background(), "user_1", 6, 3)

	s.Require().NoError(err)
	s.Equal(1, calls)
	s.Equal(testNow, d.GeneratedAt)
	s.Equal("user_1", d.Customer.UserID)
	s.Len(d.History, 2)
	s.Equal(2, d.Metrics.Frequencia)
	s.Len(d.ABC, 2)
	s.Len(d.Recommendations, 2)
	s.True(d.RulesAvailable)
	s.provider.AssertExpectations(s.T())
}

func (s *ServiceTestSuite) TestBuildDashboardInvalidArguments() {
	_, err := s.service.BuildDashboard(context.Background(), "user_1", 61, 3)
	s.ErrorIs(err, ErrInvalidWindow)

	_, err = s.service.BuildDashboard(context.Background(), "user_1", 6, 0)
	s.ErrorIs(err, ErrInvalidTopN)

	s.provider.AssertNotCalled(s.T(), "Tables", mock.Anything)
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
