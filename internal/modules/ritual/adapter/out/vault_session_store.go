package out

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"innerwork/internal/modules/ritual/domain"
	ritualout "innerwork/internal/modules/ritual/port/out"
	apperrors "innerwork/internal/platform/errors"
	"innerwork/internal/platform/markdown"
	"innerwork/internal/platform/slug"
)

// VaultSessionStore keeps one markdown note per completed session
// under sessions/YYYY/MM/DD, frontmatter as record of truth.
type VaultSessionStore struct {
	journalPath string
}

func NewVaultSessionStore(journalPath string) ritualout.SessionStore {
	return &VaultSessionStore{journalPath: journalPath}
}

func (s *VaultSessionStore) Save(_ context.Context, document domain.SessionDocument) (string, error) {
	session := document.Session
	date := session.Date
	dir := filepath.Join(s.journalPath, "sessions", date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create session dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s-%s.md", date.Format("150405"), session.Kind, slug.Make(session.Goal))
	path := filepath.Join(dir, name)

	body := document.Body
	if strings.TrimSpace(body) == "" {
		body = renderBody(session)
	}
	rendered, err := markdown.RenderFrontmatter(toFrontmatter(session), body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write session note: %w", err)
	}
	return path, nil
}

func (s *VaultSessionStore) FindByID(ctx context.Context, id string) (domain.SessionDocument, error) {
	docs, err := s.List(ctx)
	if err != nil {
		return domain.SessionDocument{}, err
	}
	for _, doc := range docs {
		if doc.Session.ID == id {
			return doc, nil
		}
	}
	return domain.SessionDocument{}, apperrors.ErrNotFound
}

// List walks the session tree in path order, skipping notes that fail
// to parse.
func (s *VaultSessionStore) List(_ context.Context) ([]domain.SessionDocument, error) {
	root := filepath.Join(s.journalPath, "sessions")
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("walk session notes: %w", err)
	}
	sort.Strings(paths)

	out := make([]domain.SessionDocument, 0, len(paths))
	for _, path := range paths {
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("read %s: %w", path, readErr)
		}
		meta, body, splitErr := markdown.SplitFrontmatter(string(content))
		if splitErr != nil {
			continue
		}
		session, ok := fromFrontmatter(meta, path)
		if !ok {
			continue
		}
		out = append(out, domain.SessionDocument{Session: session, Body: body})
	}
	return out, nil
}

func (s *VaultSessionStore) Delete(ctx context.Context, id string) error {
	doc, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := os.Remove(doc.Session.NotePath); err != nil {
		return fmt.Errorf("delete session note: %w", err)
	}
	return nil
}

func renderBody(session domain.Session) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s session\n\n", session.Kind))
	sb.WriteString("## Goal\n\n" + session.Goal + "\n\n## Repetitions\n\n")
	for n, rep := range session.Repetitions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", n+1, rep))
	}
	return sb.String()
}

func toFrontmatter(session domain.Session) map[string]any {
	return map[string]any{
		"schema_version": domain.SchemaVersion,
		"id":             session.ID,
		"date":           session.Date.Format(time.RFC3339),
		"goal":           session.Goal,
		"kind":           string(session.Kind),
		"repetitions":    session.Repetitions,
	}
}

// fromFrontmatter mirrors the entry store's leniency: only a missing
// id disqualifies a note, a bad date becomes the zero time.
func fromFrontmatter(meta map[string]any, notePath string) (domain.Session, bool) {
	session := domain.Session{
		ID:       asString(meta["id"]),
		Goal:     asString(meta["goal"]),
		Kind:     domain.Kind(asString(meta["kind"])),
		NotePath: notePath,
	}
	if session.ID == "" {
		return domain.Session{}, false
	}
	session.Date, _ = time.Parse(time.RFC3339, asString(meta["date"]))
	if raw, ok := meta["repetitions"].([]any); ok {
		session.Repetitions = make([]string, 0, len(raw))
		for _, item := range raw {
			session.Repetitions = append(session.Repetitions, asString(item))
		}
	}
	return session, true
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
