package service

import (
	"context"
	"fmt"
	"time"

	"grow-coach-be/internal/dto"
	"grow-coach-be/internal/entity"
	"grow-coach-be/internal/pkg/logger"
	"grow-coach-be/internal/pkg/serverutils"
	"grow-coach-be/internal/repository/contract"
	"grow-coach-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

const orderIdPrefix = "grow-"

// Plan prices in IDR, tax included.
var planPrices = map[string]int64{
	"monthly": 249000,
	"yearly":  2390000,
}

type IBillingService interface {
	Checkout(ctx context.Context, userId uuid.UUID, email string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	Status(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error)
	Cancel(ctx context.Context, userId uuid.UUID) error
	IssueDemoAccess() *dto.DemoAccessResponse
	ValidateDemoAccess(token string) bool
}

type billingService struct {
	profileRepo    contract.ProfileRepository
	demoTokens     *memory.DemoTokenRepository
	logger         logger.ILogger
	snapClient     snap.Client
	finishRedirect string
}

func NewBillingService(
	profileRepo contract.ProfileRepository,
	demoTokens *memory.DemoTokenRepository,
	sysLogger logger.ILogger,
	serverKey string,
	production bool,
	finishRedirect string,
) IBillingService {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	s := &billingService{
		profileRepo:    profileRepo,
		demoTokens:     demoTokens,
		logger:         sysLogger,
		finishRedirect: finishRedirect,
	}
	s.snapClient.New(serverKey, env)
	return s
}

func (s *billingService) Checkout(ctx context.Context, userId uuid.UUID, email string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	price, ok := planPrices[req.Plan]
	if !ok {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "unknown plan")
	}

	profile, err := s.profileRepo.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if profile == nil {
		profile = &entity.Profile{
			Id:               userId,
			Email:            email,
			SubscriptionTier: entity.TierFree,
			TrialStartDate:   &now,
			CreatedAt:        now,
		}
	}

	// Order id embeds the user id so payment-side reconciliation can trace
	// a transaction back to the profile.
	orderId := fmt.Sprintf("%s%s-%d", orderIdPrefix, userId, now.Unix())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: price,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: s.finishRedirect,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    req.Plan,
				Price: price,
				Qty:   1,
				Name:  fmt.Sprintf("Grow Coach Premium (%s)", req.Plan),
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := s.snapClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	profile.MidtransOrderId = orderId
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("billing", "Created checkout transaction", map[string]interface{}{
		"order_id": orderId,
		"plan":     req.Plan,
	})

	return &dto.CheckoutResponse{
		OrderId:     orderId,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

func (s *billingService) Status(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error) {
	profile, err := s.profileRepo.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &dto.SubscriptionStatusResponse{
			Tier:         entity.TierFree,
			TrialExpired: false,
		}, nil
	}

	return &dto.SubscriptionStatusResponse{
		Tier:           profile.SubscriptionTier,
		TrialStartDate: profile.TrialStartDate,
		TrialExpired:   profile.TrialExpired(time.Now()),
	}, nil
}

func (s *billingService) Cancel(ctx context.Context, userId uuid.UUID) error {
	profile, err := s.profileRepo.FindById(ctx, userId)
	if err != nil {
		return err
	}
	if profile == nil || profile.SubscriptionTier != entity.TierPremium {
		return serverutils.NewApiError(fiber.StatusNotFound, "no active subscription")
	}
	return s.profileRepo.UpdateTier(ctx, userId, entity.TierFree)
}

func (s *billingService) IssueDemoAccess() *dto.DemoAccessResponse {
	access := s.demoTokens.Issue()
	return &dto.DemoAccessResponse{
		Token:     access.Token,
		ExpiresAt: access.ExpiresAt,
	}
}

func (s *billingService) ValidateDemoAccess(token string) bool {
	return s.demoTokens.Validate(token)
}
