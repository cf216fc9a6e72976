// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"regexp"

	"github.com/MKhiriev/go-photo-share/internal/utils"
)

// mentionMarkup matches "@[Display Name](userID)".
var mentionMarkup = regexp.MustCompile(`@\[([^\]]+)\]\(([^)]+)\)`)

// parseMentions replaces every mention markup in rawText with "@Display Name"
// and returns the well-formed ids it referenced, deduplicated, in order of
// first occurrence.
func parseMentions(rawText string) (string, []string) {
	matches := mentionMarkup.FindAllStringSubmatch(rawText, -1)

	ids := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		id := m[2]
		if !utils.IsValidID(id) {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return mentionMarkup.ReplaceAllString(rawText, "@$1"), ids
}

// keepExisting filters ids down to those present in existing, preserving the
// order of ids.
func keepExisting(ids, existing []string) []string {
	set := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		set[id] = struct{}{}
	}

	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := set[id]; ok {
			kept = append(kept, id)
		}
	}
	return kept
}
