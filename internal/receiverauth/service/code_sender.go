package service

import (
	"context"
	"log/slog"

	"afternote/pkg/platform/privacy"
)

// LogCodeSender stands in for a mail gateway in development. It logs the
// masked address only; the code itself is never logged.
type LogCodeSender struct {
	logger *slog.Logger
}

func NewLogCodeSender(logger *slog.Logger) *LogCodeSender {
	return &LogCodeSender{logger: logger}
}

func (s *LogCodeSender) SendCode(ctx context.Context, email, _ string) error {
	s.logger.InfoContext(ctx, "email verification code issued",
		"email", privacy.MaskEmail(email),
	)
	return nil
}
