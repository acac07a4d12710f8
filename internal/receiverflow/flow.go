package receiverflow

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	review "afternote/internal/review/models"
	id "afternote/pkg/domain"
)

const DefaultPollInterval = 5 * time.Second

// API is the receiver side of the server.
type API interface {
	SendEmailCode(ctx context.Context, email string) error
	VerifyEmailCode(ctx context.Context, email, code string) error
	VerifyMasterKey(ctx context.Context, authCode string) (*VerifyResult, error)
	PresignDocument(ctx context.Context, authCode, extension string) (*PresignedUpload, error)
	SubmitVerification(ctx context.Context, authCode, deathURL, familyURL string) (*VerificationStatus, error)
	VerificationStatus(ctx context.Context, authCode string) (*VerificationStatus, error)
}

// Uploader puts a document at a presigned URL.
type Uploader interface {
	Upload(ctx context.Context, upload PresignedUpload, doc Document) error
}

type VerifyResult struct {
	ReceiverID   id.ReceiverID
	ReceiverName string
	SenderName   string
	Relation     string
}

type PresignedUpload struct {
	PresignedURL string
	FileURL      string
	ContentType  string
}

type VerificationStatus struct {
	ID        string
	Status    review.Status
	AdminNote *string
	CreatedAt time.Time
}

// State is a snapshot of the session.
type State struct {
	Step         VerifyStep
	MasterKey    string
	Email        string
	EmailCode    string
	ReceiverID   *id.ReceiverID
	SenderName   string
	Error        *VerifyError
	IsLoading    bool
	Verification *VerificationStatus
}

// Flow is one verification session. It is safe for concurrent use; every
// network call runs without holding the lock.
type Flow struct {
	api          API
	uploader     Uploader
	logger       *slog.Logger
	start        VerifyStep
	pollInterval time.Duration

	mu       sync.Mutex
	state    State
	authCode string
	inFlight bool
	// seq changes whenever the step changes; a response carrying an older
	// value is dropped.
	seq        uint64
	documents  *documentPair
	stopPoll   context.CancelFunc
	pollActive bool
}

type Option func(*Flow)

// WithEmailStep starts the session at EMAIL_AUTH instead of MASTER_KEY_AUTH.
func WithEmailStep() Option {
	return func(f *Flow) {
		f.start = StepEmailAuth
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(f *Flow) {
		f.pollInterval = d
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(f *Flow) {
		f.logger = logger
	}
}

func New(api API, uploader Uploader, opts ...Option) (*Flow, error) {
	if api == nil {
		return nil, errors.New("api is required")
	}
	if uploader == nil {
		return nil, errors.New("uploader is required")
	}
	f := &Flow{
		api:          api,
		uploader:     uploader,
		logger:       slog.Default(),
		start:        StepMasterKeyAuth,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.state.Step = f.start
	return f, nil
}

// State returns a copy of the session state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot()
}

func (f *Flow) snapshot() State {
	out := f.state
	if f.state.ReceiverID != nil {
		rid := *f.state.ReceiverID
		out.ReceiverID = &rid
	}
	if f.state.Error != nil {
		e := *f.state.Error
		out.Error = &e
	}
	if f.state.Verification != nil {
		v := *f.state.Verification
		out.Verification = &v
	}
	return out
}

func (f *Flow) UpdateMasterKey(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.MasterKey = text
	f.state.Error = nil
}

func (f *Flow) UpdateEmail(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Email = text
	f.state.Error = nil
}

func (f *Flow) UpdateEmailCode(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.EmailCode = text
	f.state.Error = nil
}

// AuthCode returns the verified master key for the legacy gateway. It is
// only set once the session has passed MASTER_KEY_AUTH.
func (f *Flow) AuthCode() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authCode, f.authCode != ""
}

// begin claims the single request slot for step. The caller must call the
// returned finish func exactly once.
func (f *Flow) begin(step VerifyStep) (uint64, error) {
	if f.state.Step != step {
		return 0, &WrongStepError{Want: step, Got: f.state.Step}
	}
	if f.inFlight {
		return 0, ErrInFlight
	}
	f.inFlight = true
	f.state.IsLoading = true
	return f.seq, nil
}

// finish reports whether the response is still current and, if so,
// releases the request slot. A stale response leaves the slot alone; it may
// already belong to a request on the current step.
func (f *Flow) finish(token uint64) bool {
	if token != f.seq {
		return false
	}
	f.inFlight = false
	f.state.IsLoading = false
	return true
}

func (f *Flow) fail(err error) *VerifyError {
	verr := Classify(err)
	f.state.Error = verr
	return verr
}

// moveTo abandons any request still pending on the step being left.
func (f *Flow) moveTo(step VerifyStep) {
	f.state.Step = step
	f.state.Error = nil
	f.inFlight = false
	f.state.IsLoading = false
	f.seq++
}

func (f *Flow) SendEmailCode(ctx context.Context) error {
	f.mu.Lock()
	email := strings.TrimSpace(f.state.Email)
	if f.state.Step == StepEmailAuth && email == "" && !f.inFlight {
		defer f.mu.Unlock()
		return f.fail(required("email is required"))
	}
	token, err := f.begin(StepEmailAuth)
	f.mu.Unlock()
	if err != nil {
		return err
	}

	callErr := f.api.SendEmailCode(ctx, email)

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.finish(token) {
		return ErrStale
	}
	if callErr != nil {
		return f.fail(callErr)
	}
	f.state.Error = nil
	return nil
}

// VerifyEmailCode checks the code and moves on to MASTER_KEY_AUTH.
func (f *Flow) VerifyEmailCode(ctx context.Context) error {
	f.mu.Lock()
	email := strings.TrimSpace(f.state.Email)
	code := strings.TrimSpace(f.state.EmailCode)
	if f.state.Step == StepEmailAuth && (email == "" || code == "") && !f.inFlight {
		defer f.mu.Unlock()
		return f.fail(required("email code is required"))
	}
	token, err := f.begin(StepEmailAuth)
	f.mu.Unlock()
	if err != nil {
		return err
	}

	callErr := f.api.VerifyEmailCode(ctx, email, code)

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.finish(token) {
		return ErrStale
	}
	if callErr != nil {
		return f.fail(callErr)
	}
	f.moveTo(StepMasterKeyAuth)
	return nil
}

// VerifyMasterKey checks the entered key. A blank key fails with a Required
// error and never reaches the API. On failure the key stays in place so it
// can be corrected.
func (f *Flow) VerifyMasterKey(ctx context.Context) error {
	f.mu.Lock()
	key := strings.TrimSpace(f.state.MasterKey)
	if f.state.Step == StepMasterKeyAuth && key == "" && !f.inFlight {
		defer f.mu.Unlock()
		return f.fail(required("master key is required"))
	}
	token, err := f.begin(StepMasterKeyAuth)
	f.mu.Unlock()
	if err != nil {
		return err
	}

	result, callErr := f.api.VerifyMasterKey(ctx, key)

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.finish(token) {
		f.logger.DebugContext(ctx, "discarding stale master key response")
		return ErrStale
	}
	if callErr != nil {
		return f.fail(callErr)
	}
	rid := result.ReceiverID
	f.state.ReceiverID = &rid
	f.state.SenderName = result.SenderName
	f.authCode = key
	f.moveTo(StepUploadPDFAuth)
	return nil
}

// GoToNextStep is the manual advance from UPLOAD_PDF_AUTH to END.
func (f *Flow) GoToNextStep() (VerifyStep, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Step != StepUploadPDFAuth {
		return f.state.Step, false
	}
	next, _ := Next(f.state.Step)
	f.moveTo(next)
	return next, true
}

// GoToPreviousStep moves back one step and clears the error. It returns
// false at the session's first step; the caller should leave the flow.
// Responses still in flight for the step being left are discarded.
func (f *Flow) GoToPreviousStep() (VerifyStep, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Step == f.start {
		return f.state.Step, false
	}
	prev, ok := Previous(f.state.Step)
	if !ok {
		return f.state.Step, false
	}
	if f.state.Step == StepEnd && f.stopPoll != nil {
		f.stopPoll()
		f.stopPoll = nil
	}
	f.moveTo(prev)
	return prev, true
}
