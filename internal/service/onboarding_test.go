package service

import (
	"context"
	"errors"
	"testing"

	"stablecoin-payment-rail/internal/chains"
	"stablecoin-payment-rail/internal/core/domain"
	"stablecoin-payment-rail/internal/core/ports"
	"stablecoin-payment-rail/internal/core/ports/mocks"
	"stablecoin-payment-rail/pkg/apperror"
	"stablecoin-payment-rail/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type onboardingFixture struct {
	rail        *mocks.MockRailClient
	provisioner *mocks.MockWalletProvisioner
	repo        *mocks.MockMerchantRepository
	svc         ports.OnboardingService
}

func newOnboardingFixture(t *testing.T, ctrl *gomock.Controller) *onboardingFixture {
	t.Helper()
	f := &onboardingFixture{
		rail:        mocks.NewMockRailClient(ctrl),
		provisioner: mocks.NewMockWalletProvisioner(ctrl),
		repo:        mocks.NewMockMerchantRepository(ctrl),
	}
	svc, err := NewOnboardingService(f.rail, f.provisioner, f.repo, chains.NewRegistry(), "ETH_SEPOLIA", logger.NewWithWriter("error", nil))
	require.NoError(t, err)
	f.svc = svc
	return f
}

func TestNewOnboardingService_UnknownPrimaryChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := NewOnboardingService(
		mocks.NewMockRailClient(ctrl),
		mocks.NewMockWalletProvisioner(ctrl),
		mocks.NewMockMerchantRepository(ctrl),
		chains.NewRegistry(),
		"ETH_TYPO",
		logger.NewWithWriter("error", nil),
	)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CFG_001", appErr.Code)
}

func TestOnboard_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOnboardingFixture(t, ctrl)

	registry := chains.NewRegistry()
	primary := registry.Resolve("ETH_SEPOLIA")

	gomock.InOrder(
		f.rail.EXPECT().CreateWalletSet(gomock.Any(), "acme-cafe-wallet-set").
			Return(&ports.WalletSet{ID: "ws-op", Name: "acme-cafe-wallet-set"}, nil),
		f.rail.EXPECT().CreateWalletSet(gomock.Any(), "acme-cafe-pa-wallet-set").
			Return(&ports.WalletSet{ID: "ws-pa", Name: "acme-cafe-pa-wallet-set"}, nil),
	)

	f.provisioner.EXPECT().
		Provision(gomock.Any(), "acme-cafe", "ws-op", primary, gomock.Len(6)).
		Return(&domain.ProvisioningResult{
			PrimaryAddress: "0xPrimary",
			Succeeded:      []string{"ETH_SEPOLIA", "BASE_SEPOLIA"},
			Failed:         map[string]string{"ARB_SEPOLIA": "timeout"},
		}, nil)

	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *domain.Merchant) error {
			assert.Equal(t, "Acme Cafe", m.Name)
			assert.Equal(t, "acme-cafe", m.Slug)
			assert.Equal(t, "0xPrimary", m.WalletAddress)
			assert.Equal(t, "ws-op", m.WalletSetID)
			assert.Equal(t, "ws-pa", m.PaymentAcceptanceWalletSetID)
			assert.False(t, m.CreatedAt.IsZero())
			m.ID = "mer1"
			return nil
		})

	result, err := f.svc.Onboard(context.Background(), "Acme Cafe")
	require.NoError(t, err)

	assert.Equal(t, "mer1", result.Merchant.ID)
	assert.Equal(t, "ws-op", result.Merchant.WalletSetID)
	assert.Equal(t, "ws-pa", result.Merchant.PaymentAcceptanceWalletSetID)
	assert.Equal(t, "0xPrimary", result.Merchant.WalletAddress)
	assert.Contains(t, result.Chains.Failed, "ARB_SEPOLIA")
}

func TestOnboard_SecondaryChainsExcludePrimary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOnboardingFixture(t, ctrl)

	f.rail.EXPECT().CreateWalletSet(gomock.Any(), gomock.Any()).
		Return(&ports.WalletSet{ID: "ws"}, nil).Times(2)

	f.provisioner.EXPECT().
		Provision(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, primary domain.ChainDescriptor, others []domain.ChainDescriptor) (*domain.ProvisioningResult, error) {
			assert.Equal(t, "ETH_SEPOLIA", primary.Key)
			require.Len(t, others, 6)
			for _, c := range others {
				assert.NotEqual(t, primary.Key, c.Key)
			}
			return &domain.ProvisioningResult{PrimaryAddress: "0x1", Succeeded: []string{"ETH_SEPOLIA"}}, nil
		})

	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Onboard(context.Background(), "Shop")
	require.NoError(t, err)
}

func TestOnboard_EmptyNameRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOnboardingFixture(t, ctrl)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := f.svc.Onboard(context.Background(), name)
		require.Error(t, err, "name %q", name)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VAL_001", appErr.Code)
	}
}

func TestOnboard_WalletSetCreationFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOnboardingFixture(t, ctrl)

	f.rail.EXPECT().CreateWalletSet(gomock.Any(), "acme-wallet-set").
		Return(nil, errors.New("rail 503"))
	// No provisioning and no persistence after a wallet-set failure.

	_, err := f.svc.Onboard(context.Background(), "Acme")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RAIL_001", appErr.Code)
}

func TestOnboard_ProvisioningFailureLeavesNoRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOnboardingFixture(t, ctrl)

	f.rail.EXPECT().CreateWalletSet(gomock.Any(), gomock.Any()).
		Return(&ports.WalletSet{ID: "ws"}, nil).Times(2)
	f.provisioner.EXPECT().
		Provision(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrRailCall("createAccount", "ETH_SEPOLIA", errors.New("boom")))
	// Repo.Create is never called: onboarding fully fails with no persisted record.

	_, err := f.svc.Onboard(context.Background(), "Acme")
	require.Error(t, err)
}

func TestOnboard_PersistFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newOnboardingFixture(t, ctrl)

	f.rail.EXPECT().CreateWalletSet(gomock.Any(), gomock.Any()).
		Return(&ports.WalletSet{ID: "ws"}, nil).Times(2)
	f.provisioner.EXPECT().
		Provision(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.ProvisioningResult{PrimaryAddress: "0x1", Succeeded: []string{"ETH_SEPOLIA"}}, nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := f.svc.Onboard(context.Background(), "Acme")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}
