package email

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/bizdata/business-api/internal/core/ports"
)

// MockSender logs the message instead of delivering it and drops the
// attachment into a local directory so it can be inspected.
type MockSender struct {
	dir string
	log zerolog.Logger
}

func NewMockSender(dir string, log zerolog.Logger) *MockSender {
	return &MockSender{dir: dir, log: log}
}

func (s *MockSender) Send(ctx context.Context, msg ports.EmailMessage) error {
	evt := s.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject)

	if len(msg.Attachment) > 0 {
		name := msg.AttachmentName
		if name == "" {
			name = "attachment.bin"
		}
		path := filepath.Join(s.dir, fmt.Sprintf("%d_%s", time.Now().UnixNano(), name))
		if err := os.WriteFile(path, msg.Attachment, 0o644); err != nil {
			return fmt.Errorf("write mock attachment: %w", err)
		}
		evt = evt.Str("attachment", path)
	}

	evt.Msg("mock email sent")
	return nil
}
