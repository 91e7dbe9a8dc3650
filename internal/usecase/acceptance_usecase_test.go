package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bond_portal/internal/adapter/persistence/cache"
	"bond_portal/internal/adapter/persistence/repository"
	"bond_portal/internal/config"
	"bond_portal/internal/domain/entities"
	"bond_portal/internal/infrastructure/security"
	mock_interfaces "bond_portal/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

type acceptanceHarness struct {
	now     time.Time
	uc      *AcceptanceUseCase
	tokens  *security.JWTTokenService
	otps    *cache.OTPMemoryStore
	states  *cache.AcceptanceStateMemoryStore
	offers  *repository.OfferMemoryRepository
	parties *repository.PartyMemoryRepository
	audit   *repository.AuditMemoryRepository
	code    string
}

type harnessOption func(*acceptanceHarness, *AcceptanceDeps, *config.Environment)

func withEnv(env config.Environment) harnessOption {
	return func(_ *acceptanceHarness, _ *AcceptanceDeps, e *config.Environment) { *e = env }
}

func withOffers(repo func(h *acceptanceHarness) *mock_interfaces.MockIOfferRepository) harnessOption {
	return func(h *acceptanceHarness, d *AcceptanceDeps, _ *config.Environment) { d.Offers = repo(h) }
}

func newAcceptanceHarness(t *testing.T, opts ...harnessOption) *acceptanceHarness {
	t.Helper()
	h := &acceptanceHarness{now: t0, code: "483920"}
	clock := func() time.Time { return h.now }

	tokens, err := security.NewJWTTokenService("test-secret-test-secret-test-secret")
	require.NoError(t, err)
	h.tokens = tokens.WithClock(clock)
	h.otps = cache.NewOTPMemoryStore(cache.NewCodeHasher("test-otp-key"), 15*time.Minute).
		WithClock(clock).
		WithGenerator(func() (string, error) { return h.code, nil })
	h.states = cache.NewAcceptanceStateMemoryStore().WithClock(clock)
	h.offers = repository.NewOfferMemoryRepository(entities.Offer{
		ID:             "O1",
		ProposalID:     "P-1",
		PolicyholderID: "PH-1",
		BeneficiaryID:  "BN-1",
		BondAmount:     250000,
		Premium:        3125.5,
		Status:         entities.OfferStatusPending,
		Lifecycle:      entities.LifecycleActive,
		CreatedAt:      t0.Add(-time.Hour),
	})
	h.parties = repository.NewPartyMemoryRepository(
		entities.Party{ID: "PH-1", Role: entities.PartyRolePolicyholder, Name: "Harbour Build Ltd", Email: "ph@example.com"},
		entities.Party{ID: "BN-1", Role: entities.PartyRoleBeneficiary, Name: "Westshire Council", Email: "bn@example.com"},
	)
	h.audit = repository.NewAuditMemoryRepository()

	deps := AcceptanceDeps{
		Tokens:  h.tokens,
		OTPs:    h.otps,
		States:  h.states,
		Offers:  h.offers,
		Parties: h.parties,
		Audit:   NewAuditLogger(h.audit, nil).WithClock(clock),
	}
	env := config.Environment{Mode: config.ModeLive}
	for _, opt := range opts {
		opt(h, &deps, &env)
	}
	h.uc = NewAcceptanceUseCase(deps, env, AcceptanceSettings{
		TokenTTL:        24 * time.Hour,
		SessionTTL:      30 * time.Minute,
		UpstreamTimeout: time.Second,
		PublicBaseURL:   "https://portal.example/",
	}).WithClock(clock)
	return h
}

// issue mints a token and a code for O1 the way a link would carry them.
func (h *acceptanceHarness) issue(t *testing.T) string {
	t.Helper()
	offer, err := h.offers.GetByID(context.Background(), "O1")
	require.NoError(t, err)
	token, err := h.tokens.Issue(entities.ClaimsForOffer(offer), 24*time.Hour)
	require.NoError(t, err)
	code, _, err := h.otps.Issue(context.Background(), "O1")
	require.NoError(t, err)
	require.Equal(t, h.code, code)
	return token
}

func (h *acceptanceHarness) actions() []entities.AuditAction {
	var out []entities.AuditAction
	for _, e := range h.audit.All() {
		out = append(out, e.Action)
	}
	return out
}

func (h *acceptanceHarness) lastEvent() entities.AuditEvent {
	all := h.audit.All()
	return all[len(all)-1]
}

func action(prefix, outcome string) entities.AuditAction {
	return entities.NewAuditAction(prefix, outcome)
}

func TestAcceptance_ValidateAcceptThenReplay(t *testing.T) {
	h := newAcceptanceHarness(t)
	ctx := context.Background()
	token := h.issue(t)

	view, err := h.uc.ValidateOTP(ctx, "O1", token, "483920")
	require.NoError(t, err)
	require.Equal(t, "O1", view.Offer.ID)
	require.Equal(t, "PH-1", view.Policyholder.ID)
	require.Equal(t, "BN-1", view.Beneficiary.ID)

	h.now = h.now.Add(time.Minute)
	fin, err := h.uc.Accept(ctx, "O1", token)
	require.NoError(t, err)
	require.Equal(t, "O1", fin.BondID)
	require.Equal(t, entities.OfferStatusAccepted, fin.Status)
	require.True(t, fin.At.Equal(h.now))

	_, err = h.uc.ValidateOTP(ctx, "O1", token, "483920")
	require.ErrorIs(t, err, ErrInvalidOTP)

	stored, _ := h.offers.GetByID(ctx, "O1")
	require.Equal(t, entities.OfferStatusAccepted, stored.Status)
	require.NotNil(t, stored.AcceptedAt)
	require.Equal(t, entities.HistoryActionAccepted, stored.History[len(stored.History)-1].Action)

	require.Equal(t, []entities.AuditAction{
		action(entities.AuditPrefixOTPValidation, entities.AuditOutcomeAttempt),
		action(entities.AuditPrefixOTPValidation, entities.AuditOutcomeSuccess),
		action(entities.AuditPrefixBondAccept, entities.AuditOutcomeAttempt),
		action(entities.AuditPrefixBondAccept, entities.AuditOutcomeSuccess),
		action(entities.AuditPrefixOTPValidation, entities.AuditOutcomeAttempt),
		action(entities.AuditPrefixOTPValidation, entities.AuditOutcomeFailed),
	}, h.actions())
}

func TestAcceptance_CodeIsSingleUse(t *testing.T) {
	h := newAcceptanceHarness(t)
	ctx := context.Background()
	token := h.issue(t)

	_, err := h.uc.ValidateOTP(ctx, "O1", token, "483920")
	require.NoError(t, err)

	_, err = h.uc.ValidateOTP(ctx, "O1", token, "483920")
	require.ErrorIs(t, err, ErrInvalidOTP)
	require.Equal(t, reasonInvalidOTP, h.lastEvent().Details["reason"])
	require.Equal(t, string(entities.OTPNotFound), h.lastEvent().Details["otpOutcome"])
}

func TestAcceptance_ExpiredCode(t *testing.T) {
	h := newAcceptanceHarness(t)
	token := h.issue(t)

	h.now = t0.Add(16 * time.Minute)
	_, err := h.uc.ValidateOTP(context.Background(), "O1", token, "483920")
	require.ErrorIs(t, err, ErrInvalidOTP)

	ev := h.lastEvent()
	require.Equal(t, action(entities.AuditPrefixOTPValidation, entities.AuditOutcomeFailed), ev.Action)
	require.Equal(t, reasonOTPExpired, ev.Details["reason"])
	require.Equal(t, true, ev.Details["hasOtp"])
	for _, e := range h.audit.All() {
		for _, v := range e.Details {
			require.NotEqual(t, "483920", v)
		}
	}
}

func TestAcceptance_TamperedToken(t *testing.T) {
	h := newAcceptanceHarness(t)
	token := h.issue(t)

	b := []byte(token)
	i := len(b) / 2
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}

	_, err := h.uc.ValidateOTP(context.Background(), "O1", string(b), "483920")
	require.ErrorIs(t, err, ErrInvalidToken)
	require.Equal(t, reasonInvalidToken, h.lastEvent().Details["reason"])

	// the code was never looked at
	_, err = h.uc.ValidateOTP(context.Background(), "O1", token, "483920")
	require.NoError(t, err)
}

func TestAcceptance_ExpiredToken(t *testing.T) {
	h := newAcceptanceHarness(t)
	token := h.issue(t)

	h.now = t0.Add(25 * time.Hour)
	_, err := h.uc.ValidateOTP(context.Background(), "O1", token, "483920")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAcceptance_TokenBoundToOffer(t *testing.T) {
	h := newAcceptanceHarness(t)
	token := h.issue(t)

	_, err := h.uc.ValidateOTP(context.Background(), "O2", token, "483920")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = h.uc.ValidateOTP(context.Background(), "O1", "", "483920")
	require.ErrorIs(t, err, ErrInvalidToken)
	require.Equal(t, false, h.lastEvent().Details["hasToken"])
}

func TestAcceptance_AcceptRequiresVerifiedCode(t *testing.T) {
	h := newAcceptanceHarness(t)
	token := h.issue(t)

	_, err := h.uc.Accept(context.Background(), "O1", token)
	require.ErrorIs(t, err, ErrOTPNotVerified)

	stored, _ := h.offers.GetByID(context.Background(), "O1")
	require.Equal(t, entities.OfferStatusPending, stored.Status)
}

func TestAcceptance_TerminalStateIsFinal(t *testing.T) {
	h := newAcceptanceHarness(t)
	ctx := context.Background()
	token := h.issue(t)

	_, err := h.uc.ValidateOTP(ctx, "O1", token, "483920")
	require.NoError(t, err)
	fin, err := h.uc.Reject(ctx, "O1", token)
	require.NoError(t, err)
	require.Equal(t, entities.OfferStatusRejected, fin.Status)

	_, err = h.uc.Accept(ctx, "O1", token)
	require.ErrorIs(t, err, ErrOfferAlreadyFinalized)
	_, err = h.uc.Reject(ctx, "O1", token)
	require.ErrorIs(t, err, ErrOfferAlreadyFinalized)

	stored, _ := h.offers.GetByID(ctx, "O1")
	require.Equal(t, entities.OfferStatusRejected, stored.Status)
	require.NotNil(t, stored.RejectedAt)
	require.Nil(t, stored.AcceptedAt)
}

func TestAcceptance_OfferWithdrawnAfterCertificateShown(t *testing.T) {
	h := newAcceptanceHarness(t)
	ctx := context.Background()
	token := h.issue(t)

	_, err := h.uc.ValidateOTP(ctx, "O1", token, "483920")
	require.NoError(t, err)
	_, err = h.offers.SetLifecycle(ctx, "O1", entities.LifecycleActive, entities.LifecycleSoftDeleted,
		entities.EditHistoryEntry{ID: "h-del", Timestamp: t0, Action: entities.HistoryActionSoftDeleted})
	require.NoError(t, err)

	_, err = h.uc.Accept(ctx, "O1", token)
	require.ErrorIs(t, err, ErrOfferNotOpen)
	require.NotErrorIs(t, err, ErrOfferAlreadyFinalized)

	last := h.lastEvent()
	require.Equal(t, action(entities.AuditPrefixBondAccept, entities.AuditOutcomeFailed), last.Action)
	require.Equal(t, reasonOfferNotOpen, last.Details["reason"])

	state, err := h.states.Get(ctx, "O1")
	require.NoError(t, err)
	require.Equal(t, entities.AcceptanceCertificateShown, state, "nothing was finalized")

	stored, _ := h.offers.GetByID(ctx, "O1")
	require.Equal(t, entities.OfferStatusPending, stored.Status)
	require.Nil(t, stored.AcceptedAt)
}

func TestAcceptance_ConcurrentValidationHasOneWinner(t *testing.T) {
	h := newAcceptanceHarness(t)
	token := h.issue(t)

	const n = 16
	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := h.uc.ValidateOTP(context.Background(), "O1", token, "483920"); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Equal(t, 1, ok)
	require.Len(t, h.audit.All(), 2*n)
}

func TestAcceptance_ConcurrentAcceptAndRejectHaveOneWinner(t *testing.T) {
	h := newAcceptanceHarness(t)
	ctx := context.Background()
	token := h.issue(t)
	_, err := h.uc.ValidateOTP(ctx, "O1", token, "483920")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i == 0 {
				_, results[i] = h.uc.Accept(ctx, "O1", token)
			} else {
				_, results[i] = h.uc.Reject(ctx, "O1", token)
			}
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range results {
		if err == nil {
			wins++
		} else {
			require.ErrorIs(t, err, ErrOfferAlreadyFinalized)
		}
	}
	require.Equal(t, 1, wins)
}

func TestAcceptance_UpstreamFailureKeepsCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newAcceptanceHarness(t, withOffers(func(h *acceptanceHarness) *mock_interfaces.MockIOfferRepository {
		repo := mock_interfaces.NewMockIOfferRepository(ctrl)
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "O1").DoAndReturn(h.offers.GetByID), // token issue
			repo.EXPECT().GetByID(gomock.Any(), "O1").Return(entities.Offer{}, context.DeadlineExceeded),
			repo.EXPECT().GetByID(gomock.Any(), "O1").DoAndReturn(h.offers.GetByID),
		)
		return repo
	}))
	token := h.issueThrough(t, h.uc.deps.Offers)

	_, err := h.uc.ValidateOTP(context.Background(), "O1", token, "483920")
	require.ErrorIs(t, err, ErrUpstreamFailure)
	require.Equal(t, action(entities.AuditPrefixOTPValidation, entities.AuditOutcomeError), h.lastEvent().Action)

	_, err = h.uc.ValidateOTP(context.Background(), "O1", token, "483920")
	require.NoError(t, err)
}

func TestAcceptance_FinalizeFailureLeavesStateForRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newAcceptanceHarness(t, withOffers(func(h *acceptanceHarness) *mock_interfaces.MockIOfferRepository {
		repo := mock_interfaces.NewMockIOfferRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "O1").DoAndReturn(h.offers.GetByID).AnyTimes()
		gomock.InOrder(
			repo.EXPECT().Finalize(gomock.Any(), "O1", entities.OfferStatusAccepted, gomock.Any(), gomock.Any()).
				Return(entities.Offer{}, errors.New("dynamodb: throttled")),
			repo.EXPECT().Finalize(gomock.Any(), "O1", entities.OfferStatusAccepted, gomock.Any(), gomock.Any()).
				DoAndReturn(h.offers.Finalize),
		)
		return repo
	}))
	ctx := context.Background()
	token := h.issueThrough(t, h.uc.deps.Offers)
	_, err := h.uc.ValidateOTP(ctx, "O1", token, "483920")
	require.NoError(t, err)

	_, err = h.uc.Accept(ctx, "O1", token)
	require.ErrorIs(t, err, ErrUpstreamFailure)
	state, _ := h.states.Get(ctx, "O1")
	require.Equal(t, entities.AcceptanceCertificateShown, state)

	_, err = h.uc.Accept(ctx, "O1", token)
	require.NoError(t, err)
	state, _ = h.states.Get(ctx, "O1")
	require.Equal(t, entities.AcceptanceCompleted, state)
}

func TestAcceptance_PanicStillClosesAuditTrail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newAcceptanceHarness(t, withOffers(func(h *acceptanceHarness) *mock_interfaces.MockIOfferRepository {
		repo := mock_interfaces.NewMockIOfferRepository(ctrl)
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "O1").DoAndReturn(h.offers.GetByID),
			repo.EXPECT().GetByID(gomock.Any(), "O1").DoAndReturn(func(context.Context, string) (entities.Offer, error) {
				panic("corrupt record")
			}),
		)
		return repo
	}))
	token := h.issueThrough(t, h.uc.deps.Offers)

	require.Panics(t, func() {
		_, _ = h.uc.ValidateOTP(context.Background(), "O1", token, "483920")
	})
	require.Equal(t, []entities.AuditAction{
		action(entities.AuditPrefixOTPValidation, entities.AuditOutcomeAttempt),
		action(entities.AuditPrefixOTPValidation, entities.AuditOutcomeError),
	}, h.actions())
}

func TestAcceptance_AuditSinkFailureDoesNotChangeOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := mock_interfaces.NewMockIAuditRepository(ctrl)
	sink.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("audit table missing")).Times(2)

	h := newAcceptanceHarness(t, func(_ *acceptanceHarness, d *AcceptanceDeps, _ *config.Environment) {
		d.Audit = NewAuditLogger(sink, nil)
	})
	token := h.issue(t)

	_, err := h.uc.ValidateOTP(context.Background(), "O1", token, "483920")
	require.NoError(t, err)
}

func TestAcceptance_DevBypass(t *testing.T) {
	ctx := context.Background()

	t.Run("enabled", func(t *testing.T) {
		if !config.DevBypassCompiled {
			t.Skip("bypass compiled out")
		}
		h := newAcceptanceHarness(t, withEnv(config.Environment{Mode: config.ModeMock, AllowDevBypass: true}))
		token := h.issue(t)

		_, err := h.uc.ValidateOTP(ctx, "O1", token, entities.DevBypassOTP)
		require.NoError(t, err)
		require.Equal(t, true, h.lastEvent().Details["devBypass"])

		// the real code is still outstanding
		outcome, err := h.otps.Validate(ctx, "O1", "483920")
		require.NoError(t, err)
		require.Equal(t, entities.OTPValid, outcome)
	})

	t.Run("disabled", func(t *testing.T) {
		h := newAcceptanceHarness(t, withEnv(config.Environment{Mode: config.ModeMock, AllowDevBypass: false}))
		token := h.issue(t)

		_, err := h.uc.ValidateOTP(ctx, "O1", token, entities.DevBypassOTP)
		require.ErrorIs(t, err, ErrInvalidOTP)
	})
}

func TestAcceptance_LeadingZeroCodes(t *testing.T) {
	h := newAcceptanceHarness(t)
	h.code = "007734"
	token := h.issue(t)

	_, err := h.uc.ValidateOTP(context.Background(), "O1", token, "7734")
	require.ErrorIs(t, err, ErrInvalidOTP)

	_, err = h.uc.ValidateOTP(context.Background(), "O1", token, "007734")
	require.NoError(t, err)
}

func TestAcceptance_IssueAcceptanceLink(t *testing.T) {
	ctx := context.Background()
	actor := entities.Actor{UserID: "u-1", UserName: "Broker One"}

	t.Run("mock mode returns the code and restarts the protocol", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifier := mock_interfaces.NewMockINotifier(ctrl)

		h := newAcceptanceHarness(t,
			withEnv(config.Environment{Mode: config.ModeMock}),
			func(_ *acceptanceHarness, d *AcceptanceDeps, _ *config.Environment) { d.Notifier = notifier },
		)
		_, err := h.states.CompareAndSet(ctx, "O1", entities.AcceptanceAwaitingOTP, entities.AcceptanceCertificateShown, time.Hour)
		require.NoError(t, err)

		notifier.EXPECT().SendAcceptanceInvite(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "483920").DoAndReturn(
			func(_ context.Context, p entities.Party, o entities.Offer, link entities.AcceptanceLink, _ string) error {
				if p.ID != "PH-1" || o.ID != "O1" || link.Token == "" {
					t.Fatalf("unexpected invite: %+v %+v %+v", p, o, link)
				}
				return nil
			},
		)

		link, err := h.uc.IssueAcceptanceLink(ctx, "O1", actor)
		require.NoError(t, err)
		require.Equal(t, "483920", link.OTP)
		require.Equal(t, "https://portal.example/bonds/O1/accept?token="+link.Token, link.Link)
		require.True(t, link.ExpiresAt.Equal(t0.Add(24*time.Hour)))
		require.True(t, link.OTPExpiresAt.Equal(t0.Add(15*time.Minute)))

		state, _ := h.states.Get(ctx, "O1")
		require.Equal(t, entities.AcceptanceAwaitingOTP, state)

		_, err = h.uc.ValidateOTP(ctx, "O1", link.Token, link.OTP)
		require.NoError(t, err)
	})

	t.Run("live mode hides the code", func(t *testing.T) {
		h := newAcceptanceHarness(t)
		link, err := h.uc.IssueAcceptanceLink(ctx, "O1", actor)
		require.NoError(t, err)
		require.Empty(t, link.OTP)
		require.Equal(t, action(entities.AuditPrefixAcceptanceLink, entities.AuditOutcomeSuccess), h.lastEvent().Action)
		require.Equal(t, entities.AuditResourceOffer, h.lastEvent().ResourceType)
	})

	t.Run("closed offer", func(t *testing.T) {
		h := newAcceptanceHarness(t)
		_, err := h.offers.Finalize(ctx, "O1", entities.OfferStatusAccepted, t0, entities.EditHistoryEntry{ID: "h"})
		require.NoError(t, err)

		_, err = h.uc.IssueAcceptanceLink(ctx, "O1", actor)
		require.ErrorIs(t, err, ErrOfferNotOpen)
	})

	t.Run("unknown offer", func(t *testing.T) {
		h := newAcceptanceHarness(t)
		_, err := h.uc.IssueAcceptanceLink(ctx, "nope", actor)
		require.ErrorIs(t, err, ErrOfferNotFound)
	})

	t.Run("notifier failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		notifier.EXPECT().SendAcceptanceInvite(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp"))

		h := newAcceptanceHarness(t, func(_ *acceptanceHarness, d *AcceptanceDeps, _ *config.Environment) { d.Notifier = notifier })
		_, err := h.uc.IssueAcceptanceLink(ctx, "O1", actor)
		require.ErrorIs(t, err, ErrUpstreamFailure)
		require.Equal(t, action(entities.AuditPrefixAcceptanceLink, entities.AuditOutcomeError), h.lastEvent().Action)
	})
}

// issueThrough mints a link while reading the offer through repo, for tests
// that swap the record store for a mock.
func (h *acceptanceHarness) issueThrough(t *testing.T, repo interface {
	GetByID(context.Context, string) (entities.Offer, error)
}) string {
	t.Helper()
	offer, err := repo.GetByID(context.Background(), "O1")
	require.NoError(t, err)
	token, err := h.tokens.Issue(entities.ClaimsForOffer(offer), 24*time.Hour)
	require.NoError(t, err)
	_, _, err = h.otps.Issue(context.Background(), "O1")
	require.NoError(t, err)
	return token
}
