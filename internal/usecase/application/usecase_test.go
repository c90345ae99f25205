package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainApp "farmcredit-backend/internal/domain/application"
	domainBorrower "farmcredit-backend/internal/domain/borrower"
	domainCredit "farmcredit-backend/internal/domain/credit"
	domainProduct "farmcredit-backend/internal/domain/product"
	"farmcredit-backend/internal/domain/uow"
	"farmcredit-backend/internal/testutil/appmock"
	"farmcredit-backend/internal/testutil/borrowermock"
	"farmcredit-backend/internal/testutil/creditmock"
	"farmcredit-backend/internal/testutil/productmock"
	"farmcredit-backend/internal/testutil/uowmock"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func activeProductFixture() *domainProduct.Product {
	return &domainProduct.Product{
		ProductID:       "PROD1",
		Name:            "spring planting loan",
		MinCreditLimit:  dec("1000"),
		MaxAmount:       dec("200000"),
		InterestRate:    dec("12"),
		TermMonths:      12,
		RepaymentMethod: "equal_installment",
		Status:          domainProduct.StatusActive,
	}
}

// passthroughTx runs the transaction body directly against the given repos.
func passthroughTx(repos uow.Repos) *uowmock.UoW {
	return &uowmock.UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
	}
}

func TestApplySingle_PredeductsFullAmount(t *testing.T) {
	ctx := context.Background()

	products := &productmock.Repo{
		GetByProductIDFn: func(ctx context.Context, productID string) (*domainProduct.Product, error) {
			return activeProductFixture(), nil
		},
	}
	var deducted decimal.Decimal
	credits := &creditmock.Repo{
		GetLimitFn: func(ctx context.Context, borrowerID string) (*domainCredit.Limit, error) {
			return &domainCredit.Limit{BorrowerID: borrowerID, AvailableLimit: dec("5000"), Status: domainCredit.LimitActive}, nil
		},
		PreDeductFn: func(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
			if borrowerID != "farmer-1" {
				t.Fatalf("PreDeduct borrower = %s", borrowerID)
			}
			deducted = amount
			return nil
		},
	}
	var created *domainApp.LoanApplication
	apps := &appmock.Repo{
		CreateFn: func(ctx context.Context, a *domainApp.LoanApplication) error {
			created = a
			return nil
		},
	}
	repos := uow.Repos{Products: products, Credits: credits, Applications: apps}
	u := NewUsecase(products, apps, credits, &borrowermock.Repo{}, passthroughTx(repos))

	dto, err := u.ApplySingle(ctx, ApplySingleInput{
		BorrowerID: "farmer-1",
		ProductID:  "PROD1",
		Amount:     dec("600"),
		Purpose:    "seed",
	})
	if err != nil {
		t.Fatalf("ApplySingle: unexpected err: %v", err)
	}
	if !deducted.Equal(dec("600")) {
		t.Fatalf("prededucted = %s, want 600", deducted)
	}
	if created.Status != domainApp.StatusPending || created.Type != domainApp.TypeSingle {
		t.Fatalf("unexpected application: %+v", created)
	}
	if created.TermMonths != 12 {
		t.Fatalf("term = %d, want product term 12", created.TermMonths)
	}
	if !strings.HasPrefix(dto.ApplicationID, "LOAN") {
		t.Fatalf("application id %q missing LOAN prefix", dto.ApplicationID)
	}
}

func TestApplySingle_InsufficientLimitSurfaces(t *testing.T) {
	ctx := context.Background()

	products := &productmock.Repo{
		GetByProductIDFn: func(ctx context.Context, productID string) (*domainProduct.Product, error) {
			return activeProductFixture(), nil
		},
	}
	credits := &creditmock.Repo{
		GetLimitFn: func(ctx context.Context, borrowerID string) (*domainCredit.Limit, error) {
			return &domainCredit.Limit{BorrowerID: borrowerID, AvailableLimit: dec("2000"), Status: domainCredit.LimitActive}, nil
		},
		PreDeductFn: func(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
			return domainCredit.ErrInsufficientLimit
		},
	}
	apps := &appmock.Repo{
		CreateFn: func(ctx context.Context, a *domainApp.LoanApplication) error {
			t.Fatalf("application must not be created when prededuct fails")
			return nil
		},
	}
	repos := uow.Repos{Products: products, Credits: credits, Applications: apps}
	u := NewUsecase(products, apps, credits, &borrowermock.Repo{}, passthroughTx(repos))

	_, err := u.ApplySingle(ctx, ApplySingleInput{BorrowerID: "farmer-1", ProductID: "PROD1", Amount: dec("600")})
	if !errors.Is(err, domainCredit.ErrInsufficientLimit) {
		t.Fatalf("want ErrInsufficientLimit, got %v", err)
	}
}

func TestApplySingle_LimitBelowProductFloor(t *testing.T) {
	ctx := context.Background()

	products := &productmock.Repo{
		GetByProductIDFn: func(ctx context.Context, productID string) (*domainProduct.Product, error) {
			return activeProductFixture(), nil
		},
	}
	// available limit 50 is under the product's 1000 floor, even though it
	// covers the requested 40
	credits := &creditmock.Repo{
		GetLimitFn: func(ctx context.Context, borrowerID string) (*domainCredit.Limit, error) {
			return &domainCredit.Limit{BorrowerID: borrowerID, AvailableLimit: dec("50"), Status: domainCredit.LimitActive}, nil
		},
		PreDeductFn: func(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
			t.Fatalf("nothing may be reserved below the product floor")
			return nil
		},
	}
	apps := &appmock.Repo{
		CreateFn: func(ctx context.Context, a *domainApp.LoanApplication) error {
			t.Fatalf("application must not be created below the product floor")
			return nil
		},
	}
	repos := uow.Repos{Products: products, Credits: credits, Applications: apps}
	u := NewUsecase(products, apps, credits, &borrowermock.Repo{}, passthroughTx(repos))

	_, err := u.ApplySingle(ctx, ApplySingleInput{BorrowerID: "farmer-1", ProductID: "PROD1", Amount: dec("40")})
	if !errors.Is(err, domainCredit.ErrBelowProductMin) {
		t.Fatalf("want ErrBelowProductMin, got %v", err)
	}
}

func TestApplySingle_RequiresActiveLimit(t *testing.T) {
	ctx := context.Background()

	products := &productmock.Repo{
		GetByProductIDFn: func(ctx context.Context, productID string) (*domainProduct.Product, error) {
			return activeProductFixture(), nil
		},
	}

	for name, limitFn := range map[string]func(ctx context.Context, borrowerID string) (*domainCredit.Limit, error){
		"absent": func(ctx context.Context, borrowerID string) (*domainCredit.Limit, error) {
			return nil, gorm.ErrRecordNotFound
		},
		"frozen": func(ctx context.Context, borrowerID string) (*domainCredit.Limit, error) {
			return &domainCredit.Limit{BorrowerID: borrowerID, AvailableLimit: dec("5000"), Status: domainCredit.LimitFrozen}, nil
		},
	} {
		credits := &creditmock.Repo{GetLimitFn: limitFn}
		repos := uow.Repos{Products: products, Credits: credits, Applications: &appmock.Repo{}}
		u := NewUsecase(products, &appmock.Repo{}, credits, &borrowermock.Repo{}, passthroughTx(repos))

		_, err := u.ApplySingle(ctx, ApplySingleInput{BorrowerID: "farmer-1", ProductID: "PROD1", Amount: dec("600")})
		if !errors.Is(err, domainCredit.ErrNoActiveLimit) {
			t.Fatalf("%s limit: want ErrNoActiveLimit, got %v", name, err)
		}
	}
}

func TestApplySingle_AmountOverProductMax(t *testing.T) {
	ctx := context.Background()

	products := &productmock.Repo{
		GetByProductIDFn: func(ctx context.Context, productID string) (*domainProduct.Product, error) {
			return activeProductFixture(), nil
		},
	}
	repos := uow.Repos{Products: products, Credits: &creditmock.Repo{}, Applications: &appmock.Repo{}}
	u := NewUsecase(products, &appmock.Repo{}, &creditmock.Repo{}, &borrowermock.Repo{}, passthroughTx(repos))

	_, err := u.ApplySingle(ctx, ApplySingleInput{BorrowerID: "farmer-1", ProductID: "PROD1", Amount: dec("200000.01")})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestApplyJoint_SplitsSharesWithoutPrededuct(t *testing.T) {
	ctx := context.Background()

	products := &productmock.Repo{
		GetByProductIDFn: func(ctx context.Context, productID string) (*domainProduct.Product, error) {
			return activeProductFixture(), nil
		},
	}
	limits := map[string]*domainCredit.Limit{
		"farmer-1": {BorrowerID: "farmer-1", AvailableLimit: dec("400"), Status: domainCredit.LimitActive},
		"farmer-2": {BorrowerID: "farmer-2", AvailableLimit: dec("700"), Status: domainCredit.LimitActive},
	}
	credits := &creditmock.Repo{
		GetLimitFn: func(ctx context.Context, borrowerID string) (*domainCredit.Limit, error) {
			if l, ok := limits[borrowerID]; ok {
				return l, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		PreDeductFn: func(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
			t.Fatalf("nothing may be prededucted at joint creation")
			return nil
		},
	}
	var createdShares []domainApp.PartnerShare
	apps := &appmock.Repo{
		CreatePartnerSharesFn: func(ctx context.Context, shares []domainApp.PartnerShare) error {
			createdShares = shares
			return nil
		},
	}
	repos := uow.Repos{Products: products, Credits: credits, Applications: apps}
	u := NewUsecase(products, apps, credits, &borrowermock.Repo{}, passthroughTx(repos))

	dto, err := u.ApplyJoint(ctx, ApplyJointInput{
		BorrowerID: "farmer-1",
		ProductID:  "PROD1",
		Amount:     dec("1000"),
		PartnerIDs: []string{"farmer-2"},
	})
	if err != nil {
		t.Fatalf("ApplyJoint: unexpected err: %v", err)
	}
	if dto.Status != string(domainApp.StatusPendingPartners) {
		t.Fatalf("status = %s, want pending_partners", dto.Status)
	}
	// initiator puts in their whole limit; partner carries the rest
	if !dto.InitiatorShare.Equal(dec("400")) {
		t.Fatalf("initiator share = %s, want 400", dto.InitiatorShare)
	}
	if len(createdShares) != 1 {
		t.Fatalf("shares = %d, want 1", len(createdShares))
	}
	s := createdShares[0]
	if s.PartnerID != "farmer-2" || !s.ShareAmount.Equal(dec("600")) {
		t.Fatalf("unexpected partner share: %+v", s)
	}
	if s.Status != domainApp.PartnerPendingInvitation {
		t.Fatalf("share status = %s, want pending_invitation", s.Status)
	}
	// 600/1000 → 60 %
	if !s.ShareRatio.Equal(dec("60")) {
		t.Fatalf("share ratio = %s, want 60", s.ShareRatio)
	}
}

func TestApplyJoint_ExactlyOnePartner(t *testing.T) {
	ctx := context.Background()
	u := NewUsecase(&productmock.Repo{}, &appmock.Repo{}, &creditmock.Repo{}, &borrowermock.Repo{}, uowmock.New())

	for _, partners := range [][]string{nil, {}, {"p1", "p2"}} {
		_, err := u.ApplyJoint(ctx, ApplyJointInput{BorrowerID: "b", ProductID: "PROD1", Amount: dec("100"), PartnerIDs: partners})
		if !errors.Is(err, domainApp.ErrPartnerCount) {
			t.Fatalf("partners=%v: want ErrPartnerCount, got %v", partners, err)
		}
	}
}

func TestApplyJoint_NoNeedWhenLimitCovers(t *testing.T) {
	ctx := context.Background()

	products := &productmock.Repo{
		GetByProductIDFn: func(ctx context.Context, productID string) (*domainProduct.Product, error) {
			return activeProductFixture(), nil
		},
	}
	credits := &creditmock.Repo{
		GetLimitFn: func(ctx context.Context, borrowerID string) (*domainCredit.Limit, error) {
			return &domainCredit.Limit{AvailableLimit: dec("1000"), Status: domainCredit.LimitActive}, nil
		},
	}
	repos := uow.Repos{Products: products, Credits: credits, Applications: &appmock.Repo{}}
	u := NewUsecase(products, &appmock.Repo{}, credits, &borrowermock.Repo{}, passthroughTx(repos))

	_, err := u.ApplyJoint(ctx, ApplyJointInput{BorrowerID: "farmer-1", ProductID: "PROD1", Amount: dec("1000"), PartnerIDs: []string{"farmer-2"}})
	if !errors.Is(err, domainApp.ErrNoJointNeed) {
		t.Fatalf("want ErrNoJointNeed, got %v", err)
	}
}

func TestApplyJoint_PartnerLimitTooSmall(t *testing.T) {
	ctx := context.Background()

	products := &productmock.Repo{
		GetByProductIDFn: func(ctx context.Context, productID string) (*domainProduct.Product, error) {
			return activeProductFixture(), nil
		},
	}
	// combined 400+650 clears the 1000 floor, but 650 cannot carry the
	// 800 partner share
	credits := &creditmock.Repo{
		GetLimitFn: func(ctx context.Context, borrowerID string) (*domainCredit.Limit, error) {
			if borrowerID == "farmer-1" {
				return &domainCredit.Limit{AvailableLimit: dec("400"), Status: domainCredit.LimitActive}, nil
			}
			return &domainCredit.Limit{AvailableLimit: dec("650"), Status: domainCredit.LimitActive}, nil
		},
	}
	repos := uow.Repos{Products: products, Credits: credits, Applications: &appmock.Repo{}}
	u := NewUsecase(products, &appmock.Repo{}, credits, &borrowermock.Repo{}, passthroughTx(repos))

	_, err := u.ApplyJoint(ctx, ApplyJointInput{BorrowerID: "farmer-1", ProductID: "PROD1", Amount: dec("1200"), PartnerIDs: []string{"farmer-2"}})
	if !errors.Is(err, domainCredit.ErrInsufficientLimit) {
		t.Fatalf("want ErrInsufficientLimit, got %v", err)
	}
}

func TestApplyJoint_InitiatorNeedsActiveLimit(t *testing.T) {
	ctx := context.Background()

	products := &productmock.Repo{
		GetByProductIDFn: func(ctx context.Context, productID string) (*domainProduct.Product, error) {
			return activeProductFixture(), nil
		},
	}
	credits := &creditmock.Repo{
		GetLimitFn: func(ctx context.Context, borrowerID string) (*domainCredit.Limit, error) {
			if borrowerID == "farmer-1" {
				return nil, gorm.ErrRecordNotFound
			}
			return &domainCredit.Limit{AvailableLimit: dec("5000"), Status: domainCredit.LimitActive}, nil
		},
	}
	apps := &appmock.Repo{
		CreateFn: func(ctx context.Context, a *domainApp.LoanApplication) error {
			t.Fatalf("no application for an initiator without a limit")
			return nil
		},
	}
	repos := uow.Repos{Products: products, Credits: credits, Applications: apps}
	u := NewUsecase(products, apps, credits, &borrowermock.Repo{}, passthroughTx(repos))

	_, err := u.ApplyJoint(ctx, ApplyJointInput{BorrowerID: "farmer-1", ProductID: "PROD1", Amount: dec("1000"), PartnerIDs: []string{"farmer-2"}})
	if !errors.Is(err, domainCredit.ErrNoActiveLimit) {
		t.Fatalf("want ErrNoActiveLimit, got %v", err)
	}
}

func TestApplyJoint_CombinedLimitBelowProductFloor(t *testing.T) {
	ctx := context.Background()

	products := &productmock.Repo{
		GetByProductIDFn: func(ctx context.Context, productID string) (*domainProduct.Product, error) {
			return activeProductFixture(), nil
		},
	}
	// 200 + 250 = 450, under the 1000 floor, though the partner could
	// carry the 300 share
	credits := &creditmock.Repo{
		GetLimitFn: func(ctx context.Context, borrowerID string) (*domainCredit.Limit, error) {
			if borrowerID == "farmer-1" {
				return &domainCredit.Limit{AvailableLimit: dec("200"), Status: domainCredit.LimitActive}, nil
			}
			return &domainCredit.Limit{AvailableLimit: dec("250"), Status: domainCredit.LimitActive}, nil
		},
	}
	repos := uow.Repos{Products: products, Credits: credits, Applications: &appmock.Repo{}}
	u := NewUsecase(products, &appmock.Repo{}, credits, &borrowermock.Repo{}, passthroughTx(repos))

	_, err := u.ApplyJoint(ctx, ApplyJointInput{BorrowerID: "farmer-1", ProductID: "PROD1", Amount: dec("500"), PartnerIDs: []string{"farmer-2"}})
	if !errors.Is(err, domainCredit.ErrBelowProductMin) {
		t.Fatalf("want ErrBelowProductMin, got %v", err)
	}
}

func appTx(apps *appmock.Repo, credits *creditmock.Repo, locked *domainApp.LoanApplication) *uowmock.UoW {
	return &uowmock.UoW{
		WithinApplicationTxFn: func(ctx context.Context, applicationID string, fn func(r uow.Repos, a *domainApp.LoanApplication) error) error {
			if applicationID != locked.ApplicationID {
				return domainApp.ErrNotFound
			}
			return fn(uow.Repos{Applications: apps, Credits: credits}, locked)
		},
	}
}

func TestDecide_ApproveRefusesPendingPartners(t *testing.T) {
	ctx := context.Background()

	locked := &domainApp.LoanApplication{
		ApplicationID: "LOAN1", Type: domainApp.TypeJoint,
		Amount: dec("1000"), Status: domainApp.StatusPendingPartners,
	}
	u := NewUsecase(&productmock.Repo{}, &appmock.Repo{}, &creditmock.Repo{}, &borrowermock.Repo{},
		appTx(&appmock.Repo{}, &creditmock.Repo{}, locked))

	_, err := u.Decide(ctx, DecideInput{ApplicationID: "LOAN1", Approve: true})
	if !errors.Is(err, domainApp.ErrAwaitingPartners) {
		t.Fatalf("want ErrAwaitingPartners, got %v", err)
	}
}

func TestDecide_ApproveFromPending(t *testing.T) {
	ctx := context.Background()

	locked := &domainApp.LoanApplication{
		ApplicationID: "LOAN2", Type: domainApp.TypeSingle,
		Amount: dec("600"), Status: domainApp.StatusPending,
	}
	apps := &appmock.Repo{}
	u := NewUsecase(&productmock.Repo{}, apps, &creditmock.Repo{}, &borrowermock.Repo{},
		appTx(apps, &creditmock.Repo{}, locked))

	dto, err := u.Decide(ctx, DecideInput{ApplicationID: "LOAN2", Approve: true, DecidedBy: "bank-001"})
	if err != nil {
		t.Fatalf("Decide: unexpected err: %v", err)
	}
	if dto.Status != string(domainApp.StatusApproved) || !dto.ApprovedAmount.Equal(dec("600")) {
		t.Fatalf("unexpected dto: %+v", dto)
	}
}

func TestDecide_RejectSingleRestoresFullAmount(t *testing.T) {
	ctx := context.Background()

	locked := &domainApp.LoanApplication{
		ApplicationID: "LOAN3", BorrowerID: "farmer-1", Type: domainApp.TypeSingle,
		Amount: dec("600"), Status: domainApp.StatusPending,
	}
	var restored decimal.Decimal
	credits := &creditmock.Repo{
		RestoreFn: func(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
			if borrowerID != "farmer-1" {
				t.Fatalf("Restore borrower = %s", borrowerID)
			}
			restored = amount
			return nil
		},
	}
	apps := &appmock.Repo{}
	u := NewUsecase(&productmock.Repo{}, apps, credits, &borrowermock.Repo{}, appTx(apps, credits, locked))

	dto, err := u.Decide(ctx, DecideInput{ApplicationID: "LOAN3", Approve: false, RejectReason: "income too thin"})
	if err != nil {
		t.Fatalf("Decide: unexpected err: %v", err)
	}
	if !restored.Equal(dec("600")) {
		t.Fatalf("restored = %s, want 600", restored)
	}
	if dto.Status != string(domainApp.StatusRejected) {
		t.Fatalf("status = %s, want rejected", dto.Status)
	}
}

func TestDecide_RejectJointRestoresAcceptedSharesAndInitiator(t *testing.T) {
	ctx := context.Background()

	// all partners confirmed, application back to pending: initiator's 400
	// and partner's 600 are both reserved
	locked := &domainApp.LoanApplication{
		ApplicationID: "LOAN4", BorrowerID: "farmer-1", Type: domainApp.TypeJoint,
		Amount: dec("1000"), Status: domainApp.StatusPending,
	}
	apps := &appmock.Repo{
		GetPartnerSharesFn: func(ctx context.Context, applicationID string) ([]domainApp.PartnerShare, error) {
			return []domainApp.PartnerShare{
				{PartnerID: "farmer-2", ShareAmount: dec("600"), Status: domainApp.PartnerAccepted},
			}, nil
		},
	}
	restored := map[string]decimal.Decimal{}
	credits := &creditmock.Repo{
		RestoreFn: func(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
			restored[borrowerID] = amount
			return nil
		},
	}
	u := NewUsecase(&productmock.Repo{}, apps, credits, &borrowermock.Repo{}, appTx(apps, credits, locked))

	if _, err := u.Decide(ctx, DecideInput{ApplicationID: "LOAN4", Approve: false, RejectReason: "over-exposed"}); err != nil {
		t.Fatalf("Decide: unexpected err: %v", err)
	}
	if got := restored["farmer-2"]; !got.Equal(dec("600")) {
		t.Fatalf("partner restored = %s, want 600", got)
	}
	if got := restored["farmer-1"]; !got.Equal(dec("400")) {
		t.Fatalf("initiator restored = %s, want 400", got)
	}
}

func TestDecide_RejectFromApprovedSingleRestores(t *testing.T) {
	ctx := context.Background()

	// the prededucted 600 is still reserved after approval and must come
	// back when the bank reverses the decision
	locked := &domainApp.LoanApplication{
		ApplicationID: "LOAN6", BorrowerID: "farmer-1", Type: domainApp.TypeSingle,
		Amount: dec("600"), ApprovedAmount: dec("600"), Status: domainApp.StatusApproved,
	}
	var restored decimal.Decimal
	credits := &creditmock.Repo{
		RestoreFn: func(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
			if borrowerID != "farmer-1" {
				t.Fatalf("Restore borrower = %s", borrowerID)
			}
			restored = amount
			return nil
		},
	}
	apps := &appmock.Repo{}
	u := NewUsecase(&productmock.Repo{}, apps, credits, &borrowermock.Repo{}, appTx(apps, credits, locked))

	dto, err := u.Decide(ctx, DecideInput{ApplicationID: "LOAN6", Approve: false, RejectReason: "collateral withdrawn"})
	if err != nil {
		t.Fatalf("Decide: unexpected err: %v", err)
	}
	if !restored.Equal(dec("600")) {
		t.Fatalf("restored = %s, want 600", restored)
	}
	if dto.Status != string(domainApp.StatusRejected) {
		t.Fatalf("status = %s, want rejected", dto.Status)
	}
}

func TestDecide_RejectFromApprovedJointRestoresInitiator(t *testing.T) {
	ctx := context.Background()

	locked := &domainApp.LoanApplication{
		ApplicationID: "LOAN7", BorrowerID: "farmer-1", Type: domainApp.TypeJoint,
		Amount: dec("1000"), ApprovedAmount: dec("1000"), Status: domainApp.StatusApproved,
	}
	apps := &appmock.Repo{
		GetPartnerSharesFn: func(ctx context.Context, applicationID string) ([]domainApp.PartnerShare, error) {
			return []domainApp.PartnerShare{
				{PartnerID: "farmer-2", ShareAmount: dec("600"), Status: domainApp.PartnerAccepted},
			}, nil
		},
	}
	restored := map[string]decimal.Decimal{}
	credits := &creditmock.Repo{
		RestoreFn: func(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
			restored[borrowerID] = amount
			return nil
		},
	}
	u := NewUsecase(&productmock.Repo{}, apps, credits, &borrowermock.Repo{}, appTx(apps, credits, locked))

	if _, err := u.Decide(ctx, DecideInput{ApplicationID: "LOAN7", Approve: false, RejectReason: "over-exposed"}); err != nil {
		t.Fatalf("Decide: unexpected err: %v", err)
	}
	if got := restored["farmer-2"]; !got.Equal(dec("600")) {
		t.Fatalf("partner restored = %s, want 600", got)
	}
	if got := restored["farmer-1"]; !got.Equal(dec("400")) {
		t.Fatalf("initiator restored = %s, want 400", got)
	}
}

func TestDecide_RejectDisbursedRefused(t *testing.T) {
	ctx := context.Background()

	locked := &domainApp.LoanApplication{
		ApplicationID: "LOAN8", BorrowerID: "farmer-1", Type: domainApp.TypeSingle,
		Amount: dec("600"), Status: domainApp.StatusDisbursed,
	}
	credits := &creditmock.Repo{
		RestoreFn: func(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
			t.Fatalf("disbursed money cannot be restored")
			return nil
		},
	}
	apps := &appmock.Repo{}
	u := NewUsecase(&productmock.Repo{}, apps, credits, &borrowermock.Repo{}, appTx(apps, credits, locked))

	if _, err := u.Decide(ctx, DecideInput{ApplicationID: "LOAN8", Approve: false}); !errors.Is(err, domainApp.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
}

func TestDecide_RejectPendingPartnersLeavesUnconfirmedAlone(t *testing.T) {
	ctx := context.Background()

	locked := &domainApp.LoanApplication{
		ApplicationID: "LOAN5", BorrowerID: "farmer-1", Type: domainApp.TypeJoint,
		Amount: dec("1000"), Status: domainApp.StatusPendingPartners,
	}
	apps := &appmock.Repo{
		GetPartnerSharesFn: func(ctx context.Context, applicationID string) ([]domainApp.PartnerShare, error) {
			return []domainApp.PartnerShare{
				{PartnerID: "farmer-2", ShareAmount: dec("600"), Status: domainApp.PartnerPendingInvitation},
			}, nil
		},
	}
	credits := &creditmock.Repo{
		RestoreFn: func(ctx context.Context, borrowerID string, amount decimal.Decimal) error {
			t.Fatalf("no reservation existed, Restore(%s, %s) must not run", borrowerID, amount)
			return nil
		},
	}
	u := NewUsecase(&productmock.Repo{}, apps, credits, &borrowermock.Repo{}, appTx(apps, credits, locked))

	if _, err := u.Decide(ctx, DecideInput{ApplicationID: "LOAN5", Approve: false}); err != nil {
		t.Fatalf("Decide: unexpected err: %v", err)
	}
}

func TestPublishProduct_DuplicateName(t *testing.T) {
	ctx := context.Background()

	products := &productmock.Repo{
		GetByNameFn: func(ctx context.Context, name string) (*domainProduct.Product, error) {
			return &domainProduct.Product{Name: name}, nil
		},
	}
	u := NewUsecase(products, &appmock.Repo{}, &creditmock.Repo{}, &borrowermock.Repo{}, uowmock.New())

	_, err := u.PublishProduct(ctx, PublishProductInput{
		BankID: "bank-1", Name: "spring planting loan",
		MaxAmount: dec("200000"), InterestRate: dec("12"), TermMonths: 12,
		RepaymentMethod: "equal_installment",
	})
	if !errors.Is(err, domainProduct.ErrDuplicateName) {
		t.Fatalf("want ErrDuplicateName, got %v", err)
	}
}

func TestPublishProduct_ValidatesRanges(t *testing.T) {
	ctx := context.Background()
	u := NewUsecase(&productmock.Repo{}, &appmock.Repo{}, &creditmock.Repo{}, &borrowermock.Repo{}, uowmock.New())

	base := PublishProductInput{
		BankID: "bank-1", Name: "n", MaxAmount: dec("1000"),
		InterestRate: dec("10"), TermMonths: 12, RepaymentMethod: "interest_first",
	}

	bad := base
	bad.InterestRate = dec("0.5")
	if _, err := u.PublishProduct(ctx, bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("rate below 1: want ErrInvalidInput, got %v", err)
	}
	bad = base
	bad.InterestRate = dec("21")
	if _, err := u.PublishProduct(ctx, bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("rate above 20: want ErrInvalidInput, got %v", err)
	}
	bad = base
	bad.TermMonths = 61
	if _, err := u.PublishProduct(ctx, bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("term above 60: want ErrInvalidInput, got %v", err)
	}
	bad = base
	bad.RepaymentMethod = "whenever"
	if _, err := u.PublishProduct(ctx, bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown method: want ErrInvalidInput, got %v", err)
	}
}

func TestListProducts_AnnotatesPerBorrower(t *testing.T) {
	ctx := context.Background()

	products := &productmock.Repo{
		ListActiveFn: func(ctx context.Context) ([]domainProduct.Product, error) {
			return []domainProduct.Product{
				{ProductID: "PROD1", MinCreditLimit: dec("1000"), MaxAmount: dec("50000")},
				{ProductID: "PROD2", MinCreditLimit: dec("99999"), MaxAmount: dec("500000")},
			}, nil
		},
	}
	credits := &creditmock.Repo{
		GetLimitFn: func(ctx context.Context, borrowerID string) (*domainCredit.Limit, error) {
			return &domainCredit.Limit{AvailableLimit: dec("30000"), Status: domainCredit.LimitActive}, nil
		},
	}
	u := NewUsecase(products, &appmock.Repo{}, credits, &borrowermock.Repo{}, uowmock.New())

	out, err := u.ListProducts(ctx, "farmer-1")
	if err != nil {
		t.Fatalf("ListProducts: unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if !out[0].CanApply || !out[0].MaxApplyAmount.Equal(dec("30000")) {
		t.Fatalf("product 1 annotation wrong: %+v", out[0])
	}
	if out[1].CanApply {
		t.Fatalf("product 2 should be out of reach: %+v", out[1])
	}
}

func TestRecommend_SingleWhenLimitCovers(t *testing.T) {
	ctx := context.Background()

	credits := &creditmock.Repo{
		GetLimitFn: func(ctx context.Context, borrowerID string) (*domainCredit.Limit, error) {
			return &domainCredit.Limit{AvailableLimit: dec("5000"), Status: domainCredit.LimitActive}, nil
		},
	}
	u := NewUsecase(&productmock.Repo{}, &appmock.Repo{}, credits, &borrowermock.Repo{}, uowmock.New())

	rec, err := u.Recommend(ctx, "farmer-1", dec("3000"))
	if err != nil {
		t.Fatalf("Recommend: unexpected err: %v", err)
	}
	if rec.Type != "single" || !rec.InitiatorShare.Equal(dec("3000")) {
		t.Fatalf("unexpected recommendation: %+v", rec)
	}
}

func TestRecommend_JointWithCandidates(t *testing.T) {
	ctx := context.Background()

	credits := &creditmock.Repo{
		GetLimitFn: func(ctx context.Context, borrowerID string) (*domainCredit.Limit, error) {
			return &domainCredit.Limit{AvailableLimit: dec("400"), Status: domainCredit.LimitActive}, nil
		},
	}
	u := NewUsecase(&productmock.Repo{}, &appmock.Repo{}, credits, &borrowermock.Repo{
		ListJointCandidatesFn: func(ctx context.Context, exclude []string, limit int) ([]domainBorrower.Candidate, error) {
			if limit != jointCandidateCap {
				t.Fatalf("candidate cap = %d, want %d", limit, jointCandidateCap)
			}
			return []domainBorrower.Candidate{{BorrowerID: "farmer-2", Nickname: "wang", AvailableLimit: dec("700")}}, nil
		},
	}, uowmock.New())

	rec, err := u.Recommend(ctx, "farmer-1", dec("1000"))
	if err != nil {
		t.Fatalf("Recommend: unexpected err: %v", err)
	}
	if rec.Type != "joint" || !rec.InitiatorShare.Equal(dec("400")) || !rec.PartnerShare.Equal(dec("600")) {
		t.Fatalf("unexpected recommendation: %+v", rec)
	}
	if len(rec.Candidates) != 1 || rec.Candidates[0].BorrowerID != "farmer-2" {
		t.Fatalf("unexpected candidates: %+v", rec.Candidates)
	}
}
