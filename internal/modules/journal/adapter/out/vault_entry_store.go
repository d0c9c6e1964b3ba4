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

	"innerwork/internal/modules/journal/domain"
	journalout "innerwork/internal/modules/journal/port/out"
	apperrors "innerwork/internal/platform/errors"
	"innerwork/internal/platform/markdown"
	"innerwork/internal/platform/slug"
)

// VaultEntryStore keeps one markdown note per reflection under
// entries/YYYY/MM/DD. The note frontmatter is the record of truth;
// the sqlite index is a disposable projection.
type VaultEntryStore struct {
	journalPath string
}

func NewVaultEntryStore(journalPath string) journalout.EntryStore {
	return &VaultEntryStore{journalPath: journalPath}
}

func (s *VaultEntryStore) Save(_ context.Context, document domain.EntryDocument) (string, error) {
	entry := document.Entry
	date := entry.Date
	dir := filepath.Join(s.journalPath, "entries", date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create entry dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.md", date.Format("150405"), slug.Make(entry.Prompt))
	path := filepath.Join(dir, name)

	body := document.Body
	if strings.TrimSpace(body) == "" {
		body = renderBody(entry)
	}
	rendered, err := markdown.RenderFrontmatter(toFrontmatter(entry), body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write entry note: %w", err)
	}
	return path, nil
}

func (s *VaultEntryStore) FindByID(ctx context.Context, id string) (domain.EntryDocument, error) {
	docs, err := s.List(ctx)
	if err != nil {
		return domain.EntryDocument{}, err
	}
	for _, doc := range docs {
		if doc.Entry.ID == id {
			return doc, nil
		}
	}
	return domain.EntryDocument{}, apperrors.ErrNotFound
}

// List walks the entry tree in path order. Notes that fail to parse
// are skipped rather than poisoning the whole collection.
func (s *VaultEntryStore) List(_ context.Context) ([]domain.EntryDocument, error) {
	root := filepath.Join(s.journalPath, "entries")
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
		return nil, fmt.Errorf("walk entry notes: %w", err)
	}
	sort.Strings(paths)

	out := make([]domain.EntryDocument, 0, len(paths))
	for _, path := range paths {
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("read %s: %w", path, readErr)
		}
		meta, body, splitErr := markdown.SplitFrontmatter(string(content))
		if splitErr != nil {
			continue
		}
		entry, ok := fromFrontmatter(meta, path)
		if !ok {
			continue
		}
		out = append(out, domain.EntryDocument{Entry: entry, Body: body})
	}
	return out, nil
}

func (s *VaultEntryStore) Delete(ctx context.Context, id string) error {
	doc, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := os.Remove(doc.Entry.NotePath); err != nil {
		return fmt.Errorf("delete entry note: %w", err)
	}
	return nil
}

func renderBody(entry domain.Entry) string {
	var sb strings.Builder
	sb.WriteString("# Reflection\n\n")
	sb.WriteString("> " + entry.Prompt + "\n\n")
	if strings.TrimSpace(entry.Text) != "" {
		sb.WriteString(entry.Text + "\n")
	}
	if entry.MediaKind != domain.MediaNone {
		sb.WriteString(fmt.Sprintf("\nRecording: %s (%s)\n", entry.MediaPath, entry.MediaKind))
	}
	return sb.String()
}

func toFrontmatter(entry domain.Entry) map[string]any {
	return map[string]any{
		"schema_version": domain.SchemaVersion,
		"id":             entry.ID,
		"date":           entry.Date.Format(time.RFC3339),
		"prompt":         entry.Prompt,
		"text":           entry.Text,
		"mood":           string(entry.Mood),
		"media_kind":     string(entry.MediaKind),
		"media_path":     entry.MediaPath,
	}
}

// fromFrontmatter is deliberately lenient: a bad date becomes the zero
// time (the entry then counts toward no calendar day), and only a
// missing id disqualifies a note.
func fromFrontmatter(meta map[string]any, notePath string) (domain.Entry, bool) {
	entry := domain.Entry{
		ID:        asString(meta["id"]),
		Prompt:    asString(meta["prompt"]),
		Text:      asString(meta["text"]),
		Mood:      domain.Mood(asString(meta["mood"])),
		MediaKind: domain.MediaKind(asString(meta["media_kind"])),
		MediaPath: asString(meta["media_path"]),
		NotePath:  notePath,
	}
	if entry.ID == "" {
		return domain.Entry{}, false
	}
	if entry.MediaKind == "" {
		entry.MediaKind = domain.MediaNone
	}
	entry.Date, _ = time.Parse(time.RFC3339, asString(meta["date"]))
	return entry, true
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
