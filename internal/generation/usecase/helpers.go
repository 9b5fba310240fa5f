package usecase

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"generative-media-agent/internal/model"
)

const defaultSessionID = "web"

// sessionID resolves the conversation session for a scope.
func sessionID(sc model.Scope) string {
	if sc.SessionID != "" {
		return sc.SessionID
	}
	return defaultSessionID
}

// saveAttachments writes uploaded blobs under the upload dir and
// returns their paths as attachment references.
func (uc *implUseCase) saveAttachments(attachments [][]byte) ([]string, error) {
	if len(attachments) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(uc.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	refs := make([]string, 0, len(attachments))
	for _, blob := range attachments {
		name := fmt.Sprintf("chat_%s_%s.png", time.Now().Format("20060102_150405"), uuid.NewString()[:8])
		path := filepath.Join(uc.uploadDir, name)
		if err := os.WriteFile(path, blob, 0o644); err != nil {
			return nil, fmt.Errorf("failed to save attachment: %w", err)
		}
		refs = append(refs, path)
	}
	return refs, nil
}

// loadAttachments reads attachment references back into memory.
func (uc *implUseCase) loadAttachments(refs []string) ([][]byte, error) {
	blobs := make([][]byte, 0, len(refs))
	for _, ref := range refs {
		raw, err := os.ReadFile(ref)
		if err != nil {
			return nil, fmt.Errorf("failed to load attachment %s: %w", ref, err)
		}
		blobs = append(blobs, raw)
	}
	return blobs, nil
}

// writeOutput saves a generated artifact under the output dir and
// returns its filename.
func (uc *implUseCase) writeOutput(prefix, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(uc.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s_%s.%s", prefix, time.Now().Format("20060102_150405"), uuid.NewString()[:8], ext)
	if err := os.WriteFile(filepath.Join(uc.outputDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save output: %w", err)
	}
	return name, nil
}
