package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	condition "afternote/internal/condition/models"
	capmw "afternote/internal/receiverauth/middleware"
	receiverauth "afternote/internal/receiverauth/models"
	"afternote/internal/review/service"
	"afternote/internal/review/store"
	trigger "afternote/internal/trigger/models"
	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/testutil"
)

type stubResolver map[string]receiverauth.AccessCapability

func (s stubResolver) ResolveCapability(_ context.Context, code string) (*receiverauth.AccessCapability, error) {
	c, ok := s[code]
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid auth code")
	}
	return &c, nil
}

type stubConditions map[id.OwnerID]condition.TriggerCondition

func (s stubConditions) Load(_ context.Context, owner id.OwnerID) (*condition.DeliveryCondition, error) {
	tc, ok := s[owner]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "delivery condition not found")
	}
	return &condition.DeliveryCondition{
		OwnerID:          owner,
		DeliveryMethod:   condition.DeliveryMethodReceiverApproval,
		TriggerCondition: tc,
	}, nil
}

type releaseRecorder struct{ released []id.OwnerID }

func (r *releaseRecorder) MarkReleased(_ context.Context, owner id.OwnerID, reason string) (*trigger.Release, error) {
	r.released = append(r.released, owner)
	return &trigger.Release{OwnerID: owner, Reason: reason}, nil
}

func (r *releaseRecorder) ReleaseFor(_ context.Context, owner id.OwnerID) (*trigger.Release, error) {
	for _, o := range r.released {
		if o == owner {
			return &trigger.Release{OwnerID: owner}, nil
		}
	}
	return nil, nil
}

func newRouter(t *testing.T, resolver stubResolver, conditions stubConditions, releases *releaseRecorder) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := service.New(store.NewInMemoryStore(), conditions, releases, service.WithLogger(logger))
	require.NoError(t, err)
	h := New(svc, logger)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(capmw.RequireCapability(resolver, logger))
		h.RegisterReceiver(r)
	})
	h.RegisterAdmin(r)
	return r
}

func TestReviewFlow(t *testing.T) {
	capability := receiverauth.AccessCapability{ReceiverID: id.ReceiverID(uuid.New()), OwnerID: id.OwnerID(uuid.New())}
	early := receiverauth.AccessCapability{ReceiverID: id.ReceiverID(uuid.New()), OwnerID: id.OwnerID(uuid.New())}
	releases := &releaseRecorder{}
	router := newRouter(t,
		stubResolver{"key": capability, "early": early},
		stubConditions{
			capability.OwnerID: condition.TriggerReceiverRequest,
			early.OwnerID:      condition.TriggerSpecificDate,
		},
		releases)
	body := map[string]any{
		"deathCertificateUrl":          "https://files.example.com/d.pdf",
		"familyRelationCertificateUrl": "https://files.example.com/f.pdf",
	}

	testutil.Given(t, "a receiver without a submission", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.WithAuthCode(
			testutil.NewRequest(t, http.MethodGet, "/api/receiver-auth/delivery-verification/status"), "key"))
		testutil.Then(t, "status is a 404", func(t *testing.T) {
			testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
		})
	})

	testutil.Given(t, "an unknown auth code", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.WithAuthCode(
			testutil.NewJSONRequest(t, http.MethodPost, "/api/receiver-auth/delivery-verification", body), "other"))
		testutil.Then(t, "submission is a 401", func(t *testing.T) {
			testutil.AssertStatus(t, rr, http.StatusUnauthorized)
		})
	})

	testutil.Given(t, "an owner whose trigger date has not come", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.WithAuthCode(
			testutil.NewJSONRequest(t, http.MethodPost, "/api/receiver-auth/delivery-verification", body), "early"))
		testutil.Then(t, "submission is a 403", func(t *testing.T) {
			testutil.AssertStatusAndError(t, rr, http.StatusForbidden, "forbidden")
		})
	})

	var verificationID string
	testutil.Given(t, "a submitted verification", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.WithAuthCode(
			testutil.NewJSONRequest(t, http.MethodPost, "/api/receiver-auth/delivery-verification", body), "key"))
		testutil.AssertStatus(t, rr, http.StatusCreated)
		verificationID = testutil.UnmarshalResponse[SubmissionResponse](t, rr).ID

		testutil.When(t, "the receiver submits again", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.WithAuthCode(
				testutil.NewJSONRequest(t, http.MethodPost, "/api/receiver-auth/delivery-verification", body), "key"))
			testutil.Then(t, "it conflicts", func(t *testing.T) {
				testutil.AssertStatusAndError(t, rr, http.StatusConflict, "conflict")
			})
		})

		testutil.When(t, "the admin lists the queue", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/admin/verifications"))
			testutil.Then(t, "it holds the submission", func(t *testing.T) {
				resp := testutil.UnmarshalResponse[VerificationListResponse](t, rr)
				require.Equal(t, 1, resp.TotalCount)
				assert.Equal(t, verificationID, resp.Items[0].ID)
			})
		})

		testutil.When(t, "the admin rejects with a note", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost,
				"/api/admin/verifications/"+verificationID+"/reject", map[string]any{"adminNote": "서류 불일치"}))
			testutil.AssertStatusOK(t, rr)

			status := testutil.DoRequest(router, testutil.WithAuthCode(
				testutil.NewRequest(t, http.MethodGet, "/api/receiver-auth/delivery-verification/status"), "key"))
			testutil.Then(t, "the receiver sees REJECTED and the note", func(t *testing.T) {
				resp := testutil.UnmarshalResponse[StatusResponse](t, status)
				assert.Equal(t, "REJECTED", resp.Status)
				require.NotNil(t, resp.AdminNote)
				assert.Equal(t, "서류 불일치", *resp.AdminNote)
				assert.Empty(t, releases.released)
			})
		})

		testutil.When(t, "the admin then approves", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost,
				"/api/admin/verifications/"+verificationID+"/approve"))
			testutil.Then(t, "the decision is final", func(t *testing.T) {
				testutil.AssertStatusAndError(t, rr, http.StatusConflict, "conflict")
			})
		})
	})

	testutil.Given(t, "a resubmission after rejection", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.WithAuthCode(
			testutil.NewJSONRequest(t, http.MethodPost, "/api/receiver-auth/delivery-verification", body), "key"))
		testutil.AssertStatus(t, rr, http.StatusCreated)
		second := testutil.UnmarshalResponse[StatusResponse](t, rr).ID

		testutil.When(t, "the admin approves without a body", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodPost,
				"/api/admin/verifications/"+second+"/approve"))
			testutil.Then(t, "the owner is released", func(t *testing.T) {
				testutil.AssertStatusOK(t, rr)
				testutil.AssertJSONContains(t, rr, "status", "APPROVED")
				assert.Equal(t, []id.OwnerID{capability.OwnerID}, releases.released)
			})
		})

		testutil.When(t, "the receiver submits after approval", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.WithAuthCode(
				testutil.NewJSONRequest(t, http.MethodPost, "/api/receiver-auth/delivery-verification", body), "key"))
			testutil.Then(t, "it conflicts and the approval stands", func(t *testing.T) {
				testutil.AssertStatusAndError(t, rr, http.StatusConflict, "conflict")
				status := testutil.DoRequest(router, testutil.WithAuthCode(
					testutil.NewRequest(t, http.MethodGet, "/api/receiver-auth/delivery-verification/status"), "key"))
				testutil.AssertJSONContains(t, status, "status", "APPROVED")
			})
		})
	})

	testutil.Given(t, "a malformed verification id", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/admin/verifications/nope"))
		testutil.Then(t, "it is a 400", func(t *testing.T) {
			testutil.AssertStatus(t, rr, http.StatusBadRequest)
		})
	})
}
