// Package reconcile syncs an ordered collection of entities against a desired-state
// descriptor list. Descriptors carrying an id update the matching entity, descriptors
// without one create a new entity, entities no descriptor references are dropped, and
// positions are reassigned 1..N in descriptor order.
//
// Every failure is collected; a pass never stops at the first error.
package reconcile

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"cafe-menu-service/internal/pkg/errs"
	"cafe-menu-service/internal/pkg/idgen"

	"github.com/google/uuid"
)

const (
	SuffixNotFound      = "not_found"
	SuffixDuplicateID   = "duplicate_id"
	SuffixDuplicateName = "duplicate_name"
)

type Entity interface {
	ID() uuid.UUID
}

type Descriptor interface {
	// Ref is the id of the existing entity to update, nil to create one.
	Ref() *uuid.UUID
	// Key is the name compared (trimmed, case-folded) for duplicates.
	Key() string
}

type Handler[E Entity, D Descriptor] struct {
	// Label prefixes detail codes, e.g. "section" -> "section.not_found".
	Label string
	// Path prefixes field paths, e.g. "sections" -> "sections[2].name".
	Path   string
	IDs    idgen.Provider
	New    func(id uuid.UUID, now time.Time) E
	Update func(entity E, d D, position int, now time.Time) error
}

func Code(label, suffix string) string {
	return label + "." + suffix
}

// Sync returns the reconciled collection and every detail found. The caller must
// discard the collection when details is non-empty. Entities matched by id are
// reused as-is, so their creation timestamps survive.
func Sync[E Entity, D Descriptor](existing []E, descriptors []D, h Handler[E, D], now time.Time) ([]E, []errs.Detail) {
	if h.IDs == nil || h.New == nil || h.Update == nil {
		panic("reconcile: handler requires IDs, New and Update")
	}

	var c errs.Collector
	checkDuplicateIDs(descriptors, h, &c)
	checkDuplicateKeys(descriptors, h, &c)

	arena := make(map[uuid.UUID]E, len(existing))
	for _, e := range existing {
		arena[e.ID()] = e
	}
	referenced := make(map[uuid.UUID]struct{}, len(descriptors))
	for _, d := range descriptors {
		if ref := d.Ref(); ref != nil {
			referenced[*ref] = struct{}{}
		}
	}
	for id := range arena {
		if _, ok := referenced[id]; !ok {
			delete(arena, id)
		}
	}

	out := make([]E, 0, len(descriptors))
	placed := make(map[uuid.UUID]struct{}, len(descriptors))
	for i, d := range descriptors {
		position := i + 1
		path := fmt.Sprintf("%s[%d]", h.Path, i)

		var entity E
		if ref := d.Ref(); ref != nil {
			found, ok := arena[*ref]
			if !ok {
				c.Add(errs.JoinPath(path, "id"), Code(h.Label, SuffixNotFound),
					fmt.Sprintf("%s %s not found", h.Label, ref.String()))
				continue
			}
			entity = found
			if _, dup := placed[*ref]; !dup {
				placed[*ref] = struct{}{}
				out = append(out, entity)
			}
		} else {
			entity = h.New(h.IDs.NewID(), now)
			out = append(out, entity)
		}

		c.Merge(path, h.Update(entity, d, position, now))
	}

	return out, c.Details()
}

func checkDuplicateIDs[E Entity, D Descriptor](descriptors []D, h Handler[E, D], c *errs.Collector) {
	seen := make(map[uuid.UUID]struct{}, len(descriptors))
	var dups []string
	for _, d := range descriptors {
		ref := d.Ref()
		if ref == nil {
			continue
		}
		if _, ok := seen[*ref]; ok {
			dups = append(dups, ref.String())
			continue
		}
		seen[*ref] = struct{}{}
	}
	if len(dups) > 0 {
		c.Add(h.Path, Code(h.Label, SuffixDuplicateID),
			fmt.Sprintf("duplicate %s ids: %s", h.Label, strings.Join(unique(dups), ", ")))
	}
}

func checkDuplicateKeys[E Entity, D Descriptor](descriptors []D, h Handler[E, D], c *errs.Collector) {
	seen := make(map[string]struct{}, len(descriptors))
	var dups []string
	for _, d := range descriptors {
		key := NormalizeKey(d.Key())
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			dups = append(dups, key)
			continue
		}
		seen[key] = struct{}{}
	}
	if len(dups) > 0 {
		c.Add(h.Path, Code(h.Label, SuffixDuplicateName),
			fmt.Sprintf("duplicate %s names: %s", h.Label, strings.Join(unique(dups), ", ")))
	}
}

func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func unique(ss []string) []string {
	set := make(map[string]struct{}, len(ss))
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if _, ok := set[s]; ok {
			continue
		}
		set[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
