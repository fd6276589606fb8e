package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taxara/internal/domain"
	"taxara/internal/engine"
	"taxara/internal/port"
	"taxara/internal/service"
	"taxara/mocks"
)

func newAssessmentFixture() (*mocks.MockProfileRepo, *mocks.MockTransactionRepo, *mocks.MockRateOverrideRepo, service.AssessmentService) {
	profileRepo := new(mocks.MockProfileRepo)
	txRepo := new(mocks.MockTransactionRepo)
	overrideRepo := new(mocks.MockRateOverrideRepo)
	ratesSvc := service.NewRatesService(overrideRepo)
	svc := service.NewAssessmentService(profileRepo, txRepo, ratesSvc, nil)
	return profileRepo, txRepo, overrideRepo, svc
}

func TestAssessmentService_AssessPersonal_RegimeComparison(t *testing.T) {
	profileRepo, _, _, svc := newAssessmentFixture()
	tenantID := uuid.New()

	profileRepo.On("GetByTenant", mock.Anything, tenantID).Return(&domain.TenantProfile{
		TenantID:     tenantID,
		AccountType:  domain.AccountPersonal,
		AnnualIncome: 5_000_000,
	}, nil)

	res, err := svc.AssessPersonal(context.Background(), tenantID)

	assert.NoError(t, err)
	// Current regime: 800k at 0%, 2.2m at 15%, 2m at 18%.
	assert.InDelta(t, 690_000, res.Current.TaxPayable, 0.01)
	// Legacy regime: allowance 200k flat + 20% of gross = 1.2m relief.
	assert.InDelta(t, 1_200_000, res.Legacy.TotalRelief, 0.01)
	assert.InDelta(t, 704_000, res.Legacy.TaxPayable, 0.01)
	assert.InDelta(t, res.Legacy.TaxPayable-res.Current.TaxPayable, res.Saving, 0.01)
	assert.Equal(t, int64(1), res.RateVersion)
}

func TestAssessmentService_AssessPersonal_BusinessAccount(t *testing.T) {
	profileRepo, _, _, svc := newAssessmentFixture()
	tenantID := uuid.New()

	profileRepo.On("GetByTenant", mock.Anything, tenantID).Return(&domain.TenantProfile{
		TenantID:    tenantID,
		AccountType: domain.AccountBusiness,
	}, nil)

	res, err := svc.AssessPersonal(context.Background(), tenantID)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrNotPersonalAccount)
}

func TestAssessmentService_AssessPersonal_ProfileMissing(t *testing.T) {
	profileRepo, _, _, svc := newAssessmentFixture()
	tenantID := uuid.New()

	profileRepo.On("GetByTenant", mock.Anything, tenantID).Return(nil, domain.ErrProfileMissing)

	res, err := svc.AssessPersonal(context.Background(), tenantID)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrProfileMissing)
}

func TestAssessmentService_AssessCorporate_Aggregation(t *testing.T) {
	profileRepo, txRepo, _, svc := newAssessmentFixture()
	tenantID := uuid.New()

	profileRepo.On("GetByTenant", mock.Anything, tenantID).Return(&domain.TenantProfile{
		TenantID:     tenantID,
		AccountType:  domain.AccountBusiness,
		Sector:       domain.SectorServices,
		TurnoverBand: 200_000_000,
	}, nil)
	txRepo.On("ListAllByTenant", mock.Anything, tenantID, port.TransactionFilter{
		Type: domain.TransactionExpense,
	}).Return([]domain.TransactionRecord{
		{Type: domain.TransactionExpense, Amount: 30_000_000, HasVatEvidence: true, CategoryName: "Rent"},
		{Type: domain.TransactionExpense, Amount: 5_000_000, CategoryName: "Consulting"},
		{Type: domain.TransactionExpense, Amount: 10_000_000, HasVatEvidence: true,
			IsCapitalAsset: true, AssetClass: domain.AssetVehicle, CategoryName: "Delivery vans"},
	}, nil)

	res, err := svc.AssessCorporate(context.Background(), tenantID)

	assert.NoError(t, err)
	assert.Equal(t, engine.StatusLiableTurnover, res.Classification.Status)
	assert.Equal(t, 30_000_000.0, res.DeductibleTotal)
	assert.Equal(t, 5_000_000.0, res.DisallowedTotal)
	assert.Equal(t, 10_000_000.0, res.CapitalTotal)

	// Profit 170m; vans earn a 25% allowance of 2.5m, no restriction bite.
	assert.InDelta(t, 170_000_000, res.CIT.AssessableProfit, 0.01)
	assert.InDelta(t, 2_500_000, res.CIT.UtilizedAllowance, 0.01)
	assert.False(t, res.CIT.RestrictionApplied)
	assert.InDelta(t, 167_500_000*0.30, res.CIT.CIT, 0.01)
	assert.InDelta(t, 170_000_000*0.04, res.CIT.DevelopmentLevy, 0.01)
	assert.False(t, res.MinimumTaxFlag)
	assert.Zero(t, res.InvestmentCredit)
}

func TestAssessmentService_AssessCorporate_TurnoverFromLedger(t *testing.T) {
	profileRepo, txRepo, _, svc := newAssessmentFixture()
	tenantID := uuid.New()

	profileRepo.On("GetByTenant", mock.Anything, tenantID).Return(&domain.TenantProfile{
		TenantID:    tenantID,
		AccountType: domain.AccountBusiness,
		Sector:      domain.SectorRetail,
	}, nil)
	txRepo.On("SumByType", mock.Anything, tenantID, domain.TransactionIncome).Return(40_000_000.0, nil)
	txRepo.On("ListAllByTenant", mock.Anything, tenantID, mock.Anything).
		Return([]domain.TransactionRecord{}, nil)

	res, err := svc.AssessCorporate(context.Background(), tenantID)

	assert.NoError(t, err)
	assert.Equal(t, 40_000_000.0, res.Turnover)
	assert.Equal(t, engine.StatusExemptSmall, res.Classification.Status)
	assert.Zero(t, res.CIT.CIT)
	assert.Zero(t, res.CIT.DevelopmentLevy)
	txRepo.AssertExpectations(t)
}

func TestAssessmentService_AssessCorporate_StrategicSectorCredit(t *testing.T) {
	profileRepo, txRepo, _, svc := newAssessmentFixture()
	tenantID := uuid.New()

	profileRepo.On("GetByTenant", mock.Anything, tenantID).Return(&domain.TenantProfile{
		TenantID:     tenantID,
		AccountType:  domain.AccountBusiness,
		Sector:       domain.SectorGreenEnergy,
		TurnoverBand: 300_000_000,
	}, nil)
	txRepo.On("ListAllByTenant", mock.Anything, tenantID, mock.Anything).
		Return([]domain.TransactionRecord{
			{Type: domain.TransactionExpense, Amount: 40_000_000, HasVatEvidence: true,
				IsCapitalAsset: true, AssetClass: domain.AssetEquipment, CategoryName: "Turbines"},
		}, nil)

	res, err := svc.AssessCorporate(context.Background(), tenantID)

	assert.NoError(t, err)
	assert.InDelta(t, 40_000_000*0.05, res.InvestmentCredit, 0.01)
}

func TestAssessmentService_AssessCorporate_PersonalAccount(t *testing.T) {
	profileRepo, _, _, svc := newAssessmentFixture()
	tenantID := uuid.New()

	profileRepo.On("GetByTenant", mock.Anything, tenantID).Return(&domain.TenantProfile{
		TenantID:    tenantID,
		AccountType: domain.AccountPersonal,
	}, nil)

	res, err := svc.AssessCorporate(context.Background(), tenantID)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrNotBusinessAccount)
}

func TestAssessmentService_CheckCliff_PersonalWarning(t *testing.T) {
	profileRepo, _, _, svc := newAssessmentFixture()
	tenantID := uuid.New()

	profileRepo.On("GetByTenant", mock.Anything, tenantID).Return(&domain.TenantProfile{
		TenantID:     tenantID,
		AccountType:  domain.AccountPersonal,
		AnnualIncome: 750_000,
	}, nil)

	report, err := svc.CheckCliff(context.Background(), tenantID)

	assert.NoError(t, err)
	assert.Equal(t, domain.CliffWarning, report.Status)
	assert.Equal(t, 50_000.0, report.Distance)
}

func TestAssessmentService_CheckCliff_BusinessUsesTurnover(t *testing.T) {
	profileRepo, _, _, svc := newAssessmentFixture()
	tenantID := uuid.New()

	profileRepo.On("GetByTenant", mock.Anything, tenantID).Return(&domain.TenantProfile{
		TenantID:     tenantID,
		AccountType:  domain.AccountBusiness,
		AnnualIncome: 500_000,
		TurnoverBand: 45_000_000,
	}, nil)

	report, err := svc.CheckCliff(context.Background(), tenantID)

	assert.NoError(t, err)
	assert.Equal(t, domain.CliffWarning, report.Status)
	assert.Equal(t, 5_000_000.0, report.Distance)
	assert.InDelta(t, 45_000_000*0.34, report.SimulatedCostIfCrossed, 0.01)
}

func TestAssessmentService_CheckCliff_CrossedAlertsAdmins(t *testing.T) {
	profileRepo := new(mocks.MockProfileRepo)
	txRepo := new(mocks.MockTransactionRepo)
	overrideRepo := new(mocks.MockRateOverrideRepo)
	findingRepo := new(mocks.MockFindingRepo)
	userRepo := new(mocks.MockUserRepo)
	email := new(mocks.MockEmailSender)

	ratesSvc := service.NewRatesService(overrideRepo)
	complianceSvc := service.NewComplianceService(findingRepo, userRepo, email)
	svc := service.NewAssessmentService(profileRepo, txRepo, ratesSvc, complianceSvc)

	tenantID := uuid.New()
	profileRepo.On("GetByTenant", mock.Anything, tenantID).Return(&domain.TenantProfile{
		TenantID:     tenantID,
		AccountType:  domain.AccountBusiness,
		TurnoverBand: 60_000_000,
	}, nil)
	userRepo.On("ListByTenant", mock.Anything, tenantID, 0, 100).Return([]domain.User{
		{Email: "owner@acme.test", FullName: "Ada Owner", Role: domain.RoleAdmin, IsActive: true},
	}, 1, nil)
	email.On("SendThresholdAlert", mock.Anything, "owner@acme.test", "Ada Owner", mock.Anything).
		Return(nil)

	report, err := svc.CheckCliff(context.Background(), tenantID)

	assert.NoError(t, err)
	assert.Equal(t, domain.CliffCrossed, report.Status)
	email.AssertCalled(t, "SendThresholdAlert", mock.Anything, "owner@acme.test", "Ada Owner", report.Message)
}

func TestAssessmentService_CheckCliff_SafeSendsNoAlert(t *testing.T) {
	profileRepo := new(mocks.MockProfileRepo)
	txRepo := new(mocks.MockTransactionRepo)
	overrideRepo := new(mocks.MockRateOverrideRepo)
	findingRepo := new(mocks.MockFindingRepo)
	userRepo := new(mocks.MockUserRepo)
	email := new(mocks.MockEmailSender)

	ratesSvc := service.NewRatesService(overrideRepo)
	complianceSvc := service.NewComplianceService(findingRepo, userRepo, email)
	svc := service.NewAssessmentService(profileRepo, txRepo, ratesSvc, complianceSvc)

	tenantID := uuid.New()
	profileRepo.On("GetByTenant", mock.Anything, tenantID).Return(&domain.TenantProfile{
		TenantID:     tenantID,
		AccountType:  domain.AccountBusiness,
		TurnoverBand: 10_000_000,
	}, nil)

	report, err := svc.CheckCliff(context.Background(), tenantID)

	assert.NoError(t, err)
	assert.Equal(t, domain.CliffSafe, report.Status)
	email.AssertNotCalled(t, "SendThresholdAlert",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAssessmentService_ScanReliefs_EnqueuesFindings(t *testing.T) {
	profileRepo := new(mocks.MockProfileRepo)
	txRepo := new(mocks.MockTransactionRepo)
	overrideRepo := new(mocks.MockRateOverrideRepo)
	findingRepo := new(mocks.MockFindingRepo)
	email := new(mocks.MockEmailSender)

	ratesSvc := service.NewRatesService(overrideRepo)
	complianceSvc := service.NewComplianceService(findingRepo, new(mocks.MockUserRepo), email)
	svc := service.NewAssessmentService(profileRepo, txRepo, ratesSvc, complianceSvc)

	tenantID := uuid.New()
	profileRepo.On("GetByTenant", mock.Anything, tenantID).Return(&domain.TenantProfile{
		TenantID:     tenantID,
		AccountType:  domain.AccountPersonal,
		AnnualIncome: 1_000_000,
	}, nil)
	txRepo.On("ListAllByTenant", mock.Anything, tenantID, port.TransactionFilter{}).
		Return([]domain.TransactionRecord{}, nil)
	findingRepo.On("DeletePendingByTenant", mock.Anything, tenantID).Return(nil)
	findingRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ComplianceFinding")).Return(nil)

	findings, err := svc.ScanReliefs(context.Background(), tenantID)

	assert.NoError(t, err)
	assert.Len(t, findings, 2)
	assert.Equal(t, engine.FindingRentRelief, findings[0].Type)
	assert.Equal(t, engine.FindingPensionRelief, findings[1].Type)
	findingRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestAssessmentService_ScanReliefs_NoFindingsNoQueueChurn(t *testing.T) {
	profileRepo := new(mocks.MockProfileRepo)
	txRepo := new(mocks.MockTransactionRepo)
	overrideRepo := new(mocks.MockRateOverrideRepo)
	findingRepo := new(mocks.MockFindingRepo)
	email := new(mocks.MockEmailSender)

	ratesSvc := service.NewRatesService(overrideRepo)
	complianceSvc := service.NewComplianceService(findingRepo, new(mocks.MockUserRepo), email)
	svc := service.NewAssessmentService(profileRepo, txRepo, ratesSvc, complianceSvc)

	tenantID := uuid.New()
	profileRepo.On("GetByTenant", mock.Anything, tenantID).Return(&domain.TenantProfile{
		TenantID:            tenantID,
		AccountType:         domain.AccountPersonal,
		AnnualIncome:        1_000_000,
		RentPaid:            600_000,
		PensionContribution: 80_000,
	}, nil)
	txRepo.On("ListAllByTenant", mock.Anything, tenantID, port.TransactionFilter{}).
		Return([]domain.TransactionRecord{}, nil)

	findings, err := svc.ScanReliefs(context.Background(), tenantID)

	assert.NoError(t, err)
	assert.Empty(t, findings)
	findingRepo.AssertNotCalled(t, "DeletePendingByTenant", mock.Anything, mock.Anything)
}

func TestAssessmentService_ReviewExpenses_Totals(t *testing.T) {
	_, txRepo, _, svc := newAssessmentFixture()
	tenantID := uuid.New()

	txRepo.On("ListAllByTenant", mock.Anything, tenantID, port.TransactionFilter{
		Type: domain.TransactionExpense,
	}).Return([]domain.TransactionRecord{
		{Type: domain.TransactionExpense, Amount: 100_000, HasVatEvidence: true, CategoryName: "Rent"},
		{Type: domain.TransactionExpense, Amount: 50_000, CategoryName: "Office Supplies"},
		{Type: domain.TransactionExpense, Amount: 2_000_000, HasVatEvidence: true,
			IsCapitalAsset: true, AssetClass: domain.AssetEquipment, CategoryName: "Server rack"},
	}, nil)

	review, err := svc.ReviewExpenses(context.Background(), tenantID)

	assert.NoError(t, err)
	assert.Len(t, review.Rows, 3)
	assert.Equal(t, 100_000.0, review.DeductibleTotal)
	assert.Equal(t, 50_000.0, review.DisallowedTotal)
	assert.Equal(t, 2_000_000.0, review.CapitalTotal)
	assert.Equal(t, domain.ExpenseDisallowed, review.Rows[1].Result.Status)
}

func TestAssessmentService_ClassifyVat(t *testing.T) {
	profileRepo, _, _, svc := newAssessmentFixture()
	tenantID := uuid.New()

	profileRepo.On("GetByTenant", mock.Anything, tenantID).Return(&domain.TenantProfile{
		TenantID:     tenantID,
		AccountType:  domain.AccountBusiness,
		TurnoverBand: 200_000_000,
	}, nil)

	zeroRated, err := svc.ClassifyVat(context.Background(), tenantID, "School books")
	assert.NoError(t, err)
	assert.Equal(t, domain.VatZeroRated, zeroRated.Treatment)

	standard, err := svc.ClassifyVat(context.Background(), tenantID, "Laptops")
	assert.NoError(t, err)
	assert.Equal(t, domain.VatStandard, standard.Treatment)
	assert.Equal(t, 0.075, standard.Rate)
}

func TestAssessmentService_ClassifyVat_PersonalUsesIncome(t *testing.T) {
	profileRepo, _, _, svc := newAssessmentFixture()
	tenantID := uuid.New()

	profileRepo.On("GetByTenant", mock.Anything, tenantID).Return(&domain.TenantProfile{
		TenantID:     tenantID,
		AccountType:  domain.AccountPersonal,
		AnnualIncome: 3_000_000,
	}, nil)

	res, err := svc.ClassifyVat(context.Background(), tenantID, "Laptops")

	assert.NoError(t, err)
	assert.Equal(t, domain.VatExempt, res.Treatment)
}
