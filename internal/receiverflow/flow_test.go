package receiverflow_test

//go:generate mockgen -source=flow.go -destination=mocks/mocks.go -package=mocks API,Uploader

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"afternote/internal/receiverflow"
	"afternote/internal/receiverflow/mocks"
	review "afternote/internal/review/models"
	id "afternote/pkg/domain"
)

type FlowSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	api      *mocks.MockAPI
	uploader *mocks.MockUploader
	flow     *receiverflow.Flow
	ctx      context.Context
	receiver id.ReceiverID
}

func TestFlowSuite(t *testing.T) {
	suite.Run(t, new(FlowSuite))
}

func (s *FlowSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.api = mocks.NewMockAPI(s.ctrl)
	s.uploader = mocks.NewMockUploader(s.ctrl)
	s.ctx = context.Background()
	s.receiver = id.ReceiverID(uuid.New())
	flow, err := receiverflow.New(s.api, s.uploader, receiverflow.WithPollInterval(time.Millisecond))
	s.Require().NoError(err)
	s.flow = flow
}

func (s *FlowSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FlowSuite) verified() {
	s.api.EXPECT().VerifyMasterKey(gomock.Any(), "AB12-CD34").
		Return(&receiverflow.VerifyResult{ReceiverID: s.receiver, SenderName: "Kim Jihoon"}, nil)
	s.flow.UpdateMasterKey(" AB12-CD34 ")
	s.Require().NoError(s.flow.VerifyMasterKey(s.ctx))
}

func documents() (receiverflow.Document, receiverflow.Document) {
	return receiverflow.Document{Name: "death", Extension: "pdf", Data: []byte("%PDF-1")},
		receiverflow.Document{Name: "family", Extension: ".jpg", Data: []byte{0xff, 0xd8}}
}

func (s *FlowSuite) TestNew() {
	_, err := receiverflow.New(nil, s.uploader)
	s.ErrorContains(err, "api is required")
	_, err = receiverflow.New(s.api, nil)
	s.ErrorContains(err, "uploader is required")
	s.Equal(receiverflow.StepMasterKeyAuth, s.flow.State().Step)
}

func (s *FlowSuite) TestBlankKeyNeverReachesNetwork() {
	for _, key := range []string{"", "   ", "\t\n"} {
		s.flow.UpdateMasterKey(key)
		err := s.flow.VerifyMasterKey(s.ctx)
		var verr *receiverflow.VerifyError
		s.Require().ErrorAs(err, &verr)
		s.Equal(receiverflow.ErrorRequired, verr.Kind)

		state := s.flow.State()
		s.Equal(receiverflow.StepMasterKeyAuth, state.Step)
		s.Equal(receiverflow.ErrorRequired, state.Error.Kind)
		s.False(state.IsLoading)
	}
	// no EXPECT: any API call fails the test
}

func (s *FlowSuite) TestVerifyMasterKey() {
	s.Run("success advances and records the receiver", func() {
		s.verified()
		state := s.flow.State()
		s.Equal(receiverflow.StepUploadPDFAuth, state.Step)
		s.Require().NotNil(state.ReceiverID)
		s.Equal(s.receiver, *state.ReceiverID)
		s.Equal("Kim Jihoon", state.SenderName)
		s.Nil(state.Error)
		s.False(state.IsLoading)

		code, ok := s.flow.AuthCode()
		s.True(ok)
		s.Equal("AB12-CD34", code)
	})
}

func (s *FlowSuite) TestVerifyMasterKeyFailureKeepsInput() {
	s.api.EXPECT().VerifyMasterKey(gomock.Any(), "typo").
		Return(nil, &receiverflow.APIError{Status: 400, Code: "bad_request", Message: "invalid master key"})
	s.flow.UpdateMasterKey("typo")

	err := s.flow.VerifyMasterKey(s.ctx)
	s.Error(err)
	state := s.flow.State()
	s.Equal(receiverflow.StepMasterKeyAuth, state.Step)
	s.Equal("typo", state.MasterKey)
	s.Equal(receiverflow.ErrorServer, state.Error.Kind)
	s.Equal("invalid master key", state.Error.Message)
	s.Nil(state.ReceiverID)
	s.False(state.IsLoading)

	_, ok := s.flow.AuthCode()
	s.False(ok)

	s.flow.UpdateMasterKey("typo2")
	s.Nil(s.flow.State().Error)
}

func (s *FlowSuite) TestSecondVerifyWhileInFlightIsRejected() {
	release := make(chan struct{})
	started := make(chan struct{})
	s.api.EXPECT().VerifyMasterKey(gomock.Any(), "AB12").
		DoAndReturn(func(context.Context, string) (*receiverflow.VerifyResult, error) {
			close(started)
			<-release
			return &receiverflow.VerifyResult{ReceiverID: s.receiver}, nil
		}).Times(1)
	s.flow.UpdateMasterKey("AB12")

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		firstErr = s.flow.VerifyMasterKey(s.ctx)
	}()
	<-started

	s.True(s.flow.State().IsLoading)
	s.ErrorIs(s.flow.VerifyMasterKey(s.ctx), receiverflow.ErrInFlight)

	close(release)
	wg.Wait()
	s.NoError(firstErr)
	s.Equal(receiverflow.StepUploadPDFAuth, s.flow.State().Step)
}

func (s *FlowSuite) TestLateResponseAfterBackIsDiscarded() {
	flow, err := receiverflow.New(s.api, s.uploader, receiverflow.WithEmailStep())
	s.Require().NoError(err)
	s.api.EXPECT().VerifyEmailCode(gomock.Any(), "jiwoo@example.com", "123456").Return(nil)
	flow.UpdateEmail("jiwoo@example.com")
	flow.UpdateEmailCode("123456")
	s.Require().NoError(flow.VerifyEmailCode(s.ctx))

	release := make(chan struct{})
	started := make(chan struct{})
	s.api.EXPECT().VerifyMasterKey(gomock.Any(), "AB12").
		DoAndReturn(func(context.Context, string) (*receiverflow.VerifyResult, error) {
			close(started)
			<-release
			return &receiverflow.VerifyResult{ReceiverID: s.receiver}, nil
		})
	flow.UpdateMasterKey("AB12")

	done := make(chan error, 1)
	go func() { done <- flow.VerifyMasterKey(s.ctx) }()
	<-started

	step, ok := flow.GoToPreviousStep()
	s.True(ok)
	s.Equal(receiverflow.StepEmailAuth, step)
	close(release)

	s.ErrorIs(<-done, receiverflow.ErrStale)
	state := flow.State()
	s.Equal(receiverflow.StepEmailAuth, state.Step)
	s.Nil(state.ReceiverID)
	s.False(state.IsLoading)
}

func (s *FlowSuite) TestStepLeftBehindFreesRequestSlot() {
	s.verified()

	release := make(chan struct{})
	started := make(chan struct{})
	s.api.EXPECT().PresignDocument(gomock.Any(), "AB12-CD34", gomock.Any()).
		DoAndReturn(func(context.Context, string, string) (*receiverflow.PresignedUpload, error) {
			close(started)
			<-release
			return nil, errors.New("connection reset")
		})

	death, family := documents()
	done := make(chan error, 1)
	go func() { done <- s.flow.SubmitDocuments(s.ctx, death, family) }()
	<-started
	s.True(s.flow.State().IsLoading)

	step, ok := s.flow.GoToPreviousStep()
	s.Require().True(ok)
	s.Equal(receiverflow.StepMasterKeyAuth, step)
	s.False(s.flow.State().IsLoading, "the step returned to is not loading")

	s.verified()
	s.Equal(receiverflow.StepUploadPDFAuth, s.flow.State().Step)

	close(release)
	s.ErrorIs(<-done, receiverflow.ErrStale)
	state := s.flow.State()
	s.Equal(receiverflow.StepUploadPDFAuth, state.Step)
	s.Nil(state.Error)
	s.False(state.IsLoading)
}

func (s *FlowSuite) TestPreviousStep() {
	s.Run("from the first step the caller exits", func() {
		step, ok := s.flow.GoToPreviousStep()
		s.False(ok)
		s.Equal(receiverflow.StepMasterKeyAuth, step)
	})

	s.Run("from upload it returns to master key and clears the error", func() {
		s.verified()
		s.Error(s.flow.SubmitDocuments(s.ctx, receiverflow.Document{}, receiverflow.Document{}))
		s.NotNil(s.flow.State().Error)

		step, ok := s.flow.GoToPreviousStep()
		s.True(ok)
		s.Equal(receiverflow.StepMasterKeyAuth, step)
		state := s.flow.State()
		s.Nil(state.Error)
		s.NotNil(state.ReceiverID)
	})
}

func (s *FlowSuite) TestEmailStep() {
	flow, err := receiverflow.New(s.api, s.uploader, receiverflow.WithEmailStep())
	s.Require().NoError(err)
	s.Equal(receiverflow.StepEmailAuth, flow.State().Step)

	s.Run("blank email is required", func() {
		var verr *receiverflow.VerifyError
		s.Require().ErrorAs(flow.SendEmailCode(s.ctx), &verr)
		s.Equal(receiverflow.ErrorRequired, verr.Kind)
	})

	s.Run("master key is refused before the email step", func() {
		flow.UpdateMasterKey("AB12")
		var wrong *receiverflow.WrongStepError
		s.ErrorAs(flow.VerifyMasterKey(s.ctx), &wrong)
	})

	s.Run("wrong code stays put", func() {
		s.api.EXPECT().SendEmailCode(gomock.Any(), "jiwoo@example.com").Return(nil)
		s.api.EXPECT().VerifyEmailCode(gomock.Any(), "jiwoo@example.com", "000000").
			Return(&receiverflow.APIError{Status: 401, Code: "unauthorized", Message: "invalid email code"})
		flow.UpdateEmail("jiwoo@example.com")
		s.Require().NoError(flow.SendEmailCode(s.ctx))
		flow.UpdateEmailCode("000000")
		s.Error(flow.VerifyEmailCode(s.ctx))
		s.Equal(receiverflow.StepEmailAuth, flow.State().Step)
		s.Equal("invalid email code", flow.State().Error.Message)
	})

	s.Run("right code moves to the master key", func() {
		s.api.EXPECT().VerifyEmailCode(gomock.Any(), "jiwoo@example.com", "123456").Return(nil)
		flow.UpdateEmailCode("123456")
		s.Require().NoError(flow.VerifyEmailCode(s.ctx))
		s.Equal(receiverflow.StepMasterKeyAuth, flow.State().Step)
	})
}

func (s *FlowSuite) TestSubmitDocuments() {
	s.verified()
	death, family := documents()

	s.api.EXPECT().PresignDocument(gomock.Any(), "AB12-CD34", "pdf").
		Return(&receiverflow.PresignedUpload{PresignedURL: "https://s3/put-1", FileURL: "https://cdn/death.pdf", ContentType: "application/pdf"}, nil)
	s.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), death).Return(nil)
	s.api.EXPECT().PresignDocument(gomock.Any(), "AB12-CD34", "jpg").
		Return(&receiverflow.PresignedUpload{PresignedURL: "https://s3/put-2", FileURL: "https://cdn/family.jpg", ContentType: "image/jpeg"}, nil).Times(2)
	s.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), family).Return(errors.New("connection reset"))

	s.Run("an upload failure stays on the step", func() {
		s.Error(s.flow.SubmitDocuments(s.ctx, death, family))
		state := s.flow.State()
		s.Equal(receiverflow.StepUploadPDFAuth, state.Step)
		s.Equal(receiverflow.ErrorUnknown, state.Error.Kind)
	})

	s.Run("retry reuses the chosen documents and skips finished uploads", func() {
		s.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), family).Return(nil)
		s.api.EXPECT().SubmitVerification(gomock.Any(), "AB12-CD34", "https://cdn/death.pdf", "https://cdn/family.jpg").
			Return(&receiverflow.VerificationStatus{ID: "v1", Status: review.StatusPending}, nil)

		s.Require().NoError(s.flow.RetrySubmit(s.ctx))
		state := s.flow.State()
		s.Equal(receiverflow.StepEnd, state.Step)
		s.Equal(review.StatusPending, state.Verification.Status)
	})
}

func (s *FlowSuite) TestManualAdvance() {
	_, ok := s.flow.GoToNextStep()
	s.False(ok)
	s.verified()
	step, ok := s.flow.GoToNextStep()
	s.True(ok)
	s.Equal(receiverflow.StepEnd, step)
}

func (s *FlowSuite) TestPollStatus() {
	s.verified()
	s.flow.GoToNextStep()

	note := "서류 불일치"
	gomock.InOrder(
		s.api.EXPECT().VerificationStatus(gomock.Any(), "AB12-CD34").Return(nil, context.DeadlineExceeded),
		s.api.EXPECT().VerificationStatus(gomock.Any(), "AB12-CD34").
			Return(&receiverflow.VerificationStatus{Status: review.StatusPending}, nil),
		s.api.EXPECT().VerificationStatus(gomock.Any(), "AB12-CD34").
			Return(&receiverflow.VerificationStatus{Status: review.StatusRejected, AdminNote: &note}, nil),
	)

	status, err := s.flow.PollStatus(s.ctx, 0)
	s.Require().NoError(err)
	s.Equal(review.StatusRejected, status.Status)
	state := s.flow.State()
	s.Nil(state.Error)
	s.Equal(note, *state.Verification.AdminNote)
}

func (s *FlowSuite) TestPollStopsWhenLeavingEnd() {
	s.verified()
	s.flow.GoToNextStep()

	polled := make(chan struct{}, 1)
	s.api.EXPECT().VerificationStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (*receiverflow.VerificationStatus, error) {
			select {
			case polled <- struct{}{}:
			default:
			}
			return &receiverflow.VerificationStatus{Status: review.StatusPending}, nil
		}).AnyTimes()

	done := make(chan error, 1)
	go func() {
		_, err := s.flow.PollStatus(s.ctx, time.Millisecond)
		done <- err
	}()
	<-polled

	step, ok := s.flow.GoToPreviousStep()
	s.True(ok)
	s.Equal(receiverflow.StepUploadPDFAuth, step)

	select {
	case err := <-done:
		s.Error(err)
	case <-time.After(time.Second):
		s.Fail("polling did not stop")
	}
}

func (s *FlowSuite) TestPollOutsideEndIsRefused() {
	_, err := s.flow.PollStatus(s.ctx, time.Millisecond)
	var wrong *receiverflow.WrongStepError
	s.ErrorAs(err, &wrong)
}
