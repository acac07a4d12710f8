// Package receiverflow drives one receiver through verification: the email
// code, the master key, the certificate upload and the wait for review.
//
// A Flow is advisory client state. The server decides whether an auth code
// grants access; the Flow only keeps a session from skipping steps and from
// acting on stale responses.
package receiverflow

// VerifyStep is a stage of the verification flow.
type VerifyStep int

const (
	StepEmailAuth VerifyStep = iota + 1
	StepMasterKeyAuth
	StepUploadPDFAuth
	StepEnd
)

var stepNames = map[VerifyStep]string{
	StepEmailAuth:     "EMAIL_AUTH",
	StepMasterKeyAuth: "MASTER_KEY_AUTH",
	StepUploadPDFAuth: "UPLOAD_PDF_AUTH",
	StepEnd:           "END",
}

var nextStep = map[VerifyStep]VerifyStep{
	StepEmailAuth:     StepMasterKeyAuth,
	StepMasterKeyAuth: StepUploadPDFAuth,
	StepUploadPDFAuth: StepEnd,
}

var previousStep = map[VerifyStep]VerifyStep{
	StepMasterKeyAuth: StepEmailAuth,
	StepUploadPDFAuth: StepMasterKeyAuth,
	StepEnd:           StepUploadPDFAuth,
}

func (s VerifyStep) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Next returns the step after s. END has none.
func Next(s VerifyStep) (VerifyStep, bool) {
	n, ok := nextStep[s]
	return n, ok
}

// Previous returns the step before s. EMAIL_AUTH has none.
func Previous(s VerifyStep) (VerifyStep, bool) {
	p, ok := previousStep[s]
	return p, ok
}
