package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"taxara/internal/domain"
	"taxara/internal/engine"
	"taxara/internal/port"
)

// PersonalAssessment compares the current regime against the legacy one for
// the same gross income.
type PersonalAssessment struct {
	RateVersion int64                 `json:"rate_version"`
	Current     engine.PersonalResult `json:"current"`
	Legacy      engine.PersonalResult `json:"legacy"`
	Saving      float64               `json:"saving"`
}

// CorporateAssessment is the full corporate position for a tax period.
type CorporateAssessment struct {
	RateVersion      int64                   `json:"rate_version"`
	Classification   engine.Classification   `json:"classification"`
	CIT              engine.CorporateResult  `json:"cit"`
	MinimumTaxFlag   bool                    `json:"minimum_tax_flag"`
	InvestmentCredit float64                 `json:"investment_credit"`
	Turnover         float64                 `json:"turnover"`
	DeductibleTotal  float64                 `json:"deductible_total"`
	DisallowedTotal  float64                 `json:"disallowed_total"`
	CapitalTotal     float64                 `json:"capital_total"`
}

// ExpenseReviewRow is one validated ledger expense.
type ExpenseReviewRow struct {
	Record domain.TransactionRecord `json:"record"`
	Result engine.ExpenseResult     `json:"result"`
}

// ExpenseReview is the per-expense validation report. Capital assets are
// excluded from the deductible total even when approved; they are relieved
// through capital allowances instead.
type ExpenseReview struct {
	Rows            []ExpenseReviewRow `json:"rows"`
	DeductibleTotal float64            `json:"deductible_total"`
	DisallowedTotal float64            `json:"disallowed_total"`
	CapitalTotal    float64            `json:"capital_total"`
}

// AssessmentService runs engine computations against a tenant's stored
// profile and ledger. Every call reads one rate-table snapshot up front, so
// a concurrent admin override never splits a single assessment across two
// tables.
type AssessmentService interface {
	AssessPersonal(ctx context.Context, tenantID uuid.UUID) (*PersonalAssessment, error)
	AssessCorporate(ctx context.Context, tenantID uuid.UUID) (*CorporateAssessment, error)
	CheckCliff(ctx context.Context, tenantID uuid.UUID) (*engine.CliffReport, error)
	ScanReliefs(ctx context.Context, tenantID uuid.UUID) ([]engine.Finding, error)
	ReviewExpenses(ctx context.Context, tenantID uuid.UUID) (*ExpenseReview, error)
	ClassifyVat(ctx context.Context, tenantID uuid.UUID, description string) (*engine.VatClassification, error)
}

type assessmentService struct {
	profileRepo     port.ProfileRepository
	transactionRepo port.TransactionRepository
	rates           RatesService
	compliance      ComplianceService
}

// NewAssessmentService creates an AssessmentService implementation.
func NewAssessmentService(
	profileRepo port.ProfileRepository,
	transactionRepo port.TransactionRepository,
	rates RatesService,
	compliance ComplianceService,
) AssessmentService {
	return &assessmentService{
		profileRepo:     profileRepo,
		transactionRepo: transactionRepo,
		rates:           rates,
		compliance:      compliance,
	}
}

func (s *assessmentService) AssessPersonal(ctx context.Context, tenantID uuid.UUID) (*PersonalAssessment, error) {
	profile, err := s.profileRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if profile.AccountType != domain.AccountPersonal {
		return nil, domain.ErrNotPersonalAccount
	}

	rt := s.rates.Current()
	calc := engine.NewPersonalCalculator(rt)

	current := calc.Compute(profile.AnnualIncome, profile.PensionContribution, profile.RentPaid)
	legacy := calc.ComputeLegacy(profile.AnnualIncome, profile.PensionContribution)

	return &PersonalAssessment{
		RateVersion: rt.Version,
		Current:     current,
		Legacy:      legacy,
		Saving:      legacy.TaxPayable - current.TaxPayable,
	}, nil
}

func (s *assessmentService) AssessCorporate(ctx context.Context, tenantID uuid.UUID) (*CorporateAssessment, error) {
	profile, err := s.profileRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if profile.AccountType != domain.AccountBusiness {
		return nil, domain.ErrNotBusinessAccount
	}

	rt := s.rates.Current()

	turnover := profile.TurnoverBand
	if turnover == 0 {
		turnover, err = s.transactionRepo.SumByType(ctx, tenantID, domain.TransactionIncome)
		if err != nil {
			return nil, fmt.Errorf("assessment.AssessCorporate: %w", err)
		}
	}

	expenses, err := s.transactionRepo.ListAllByTenant(ctx, tenantID, port.TransactionFilter{
		Type: domain.TransactionExpense,
	})
	if err != nil {
		return nil, fmt.Errorf("assessment.AssessCorporate: %w", err)
	}

	validator := engine.NewExpenseValidator()
	var deductible, disallowed, capital, allowances float64
	for i := range expenses {
		e := &expenses[i]
		if e.IsCapitalAsset {
			capital += e.Amount
			allowances += e.Amount * rt.AllowanceRate(e.AssetClass)
			continue
		}
		if validator.Validate(e).IsDeductible {
			deductible += e.Amount
		} else {
			disallowed += e.Amount
		}
	}

	profit := turnover - deductible
	if profit < 0 {
		profit = 0
	}

	calc := engine.NewCorporateCalculator(rt, engine.CorporateInput{
		Turnover:         turnover,
		AssessableProfit: profit,
		Sector:           profile.Sector,
		TotalAssets:      profile.TotalAssets,
	})

	cit := calc.CalculateCIT(allowances)
	totalTax := cit.CIT + cit.DevelopmentLevy
	minFlag := calc.CheckMinimumTax(totalTax, profit)
	credit := calc.CalculateInvestmentCredit(capital)

	return &CorporateAssessment{
		RateVersion:      rt.Version,
		Classification:   calc.Classify(),
		CIT:              cit,
		MinimumTaxFlag:   minFlag,
		InvestmentCredit: credit,
		Turnover:         turnover,
		DeductibleTotal:  deductible,
		DisallowedTotal:  disallowed,
		CapitalTotal:     capital,
	}, nil
}

func (s *assessmentService) CheckCliff(ctx context.Context, tenantID uuid.UUID) (*engine.CliffReport, error) {
	profile, err := s.profileRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	monitor := engine.NewThresholdMonitor(s.rates.Current())

	value := profile.AnnualIncome
	if profile.AccountType == domain.AccountBusiness {
		value = profile.TurnoverBand
	}
	report := monitor.Check(value, profile.AccountType)

	// Approaching or crossing a cliff also alerts the tenant's admins.
	if s.compliance != nil && report.Status != domain.CliffSafe {
		_ = s.compliance.AlertThreshold(ctx, tenantID, report.Message)
	}
	return &report, nil
}

func (s *assessmentService) ScanReliefs(ctx context.Context, tenantID uuid.UUID) ([]engine.Finding, error) {
	profile, err := s.profileRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.ListAllByTenant(ctx, tenantID, port.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("assessment.ScanReliefs: %w", err)
	}

	scanner := engine.NewReliefScanner(s.rates.Current())
	findings := scanner.Scan(profile, transactions)

	if s.compliance != nil && len(findings) > 0 {
		if err := s.compliance.EnqueueFindings(ctx, tenantID, findings); err != nil {
			return nil, fmt.Errorf("assessment.ScanReliefs: %w", err)
		}
	}
	return findings, nil
}

func (s *assessmentService) ReviewExpenses(ctx context.Context, tenantID uuid.UUID) (*ExpenseReview, error) {
	expenses, err := s.transactionRepo.ListAllByTenant(ctx, tenantID, port.TransactionFilter{
		Type: domain.TransactionExpense,
	})
	if err != nil {
		return nil, fmt.Errorf("assessment.ReviewExpenses: %w", err)
	}

	validator := engine.NewExpenseValidator()
	review := &ExpenseReview{Rows: make([]ExpenseReviewRow, 0, len(expenses))}
	for i := range expenses {
		e := expenses[i]
		result := validator.Validate(&e)
		review.Rows = append(review.Rows, ExpenseReviewRow{Record: e, Result: result})

		switch {
		case e.IsCapitalAsset:
			review.CapitalTotal += e.Amount
		case result.IsDeductible:
			review.DeductibleTotal += e.Amount
		default:
			review.DisallowedTotal += e.Amount
		}
	}
	return review, nil
}

func (s *assessmentService) ClassifyVat(ctx context.Context, tenantID uuid.UUID, description string) (*engine.VatClassification, error) {
	profile, err := s.profileRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	turnover := profile.TurnoverBand
	if profile.AccountType == domain.AccountPersonal {
		turnover = profile.AnnualIncome
	}

	classifier := engine.NewVatClassifier(s.rates.Current())
	classification := classifier.Classify(turnover, description)
	return &classification, nil
}
