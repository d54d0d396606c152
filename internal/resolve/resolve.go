// Package resolve folds the evidence records gathered for one file into
// its final licensing answer.
//
// The fold applies the precedence policy: an override annotation that is
// the most specific match replaces every other source outright; a closest
// annotation drops all shallower manifests; aggregate annotations merge
// downward. The file's own content (header or sidecar) always merges in
// unless an override applies, and the deprecated global manifest only
// participates when no annotation entry covers the file at all.
package resolve

import (
	"sort"

	"github.com/reuselint/reuselint/internal/record"
)

// Resolve merges the evidence records that apply to path into one
// FileInfo. Records may arrive in any order; the result depends only on
// their contents. Passing no records yields the empty answer, which is a
// valid outcome, not an error.
func Resolve(path string, records []record.Evidence) record.FileInfo {
	var (
		content   []record.Evidence
		manifests []record.Evidence
		legacy    []record.Evidence
	)
	for _, rec := range records {
		if rec.Empty() {
			continue
		}
		switch rec.Kind {
		case record.SourceReuseTOML:
			manifests = append(manifests, rec)
		case record.SourceDep5:
			legacy = append(legacy, rec)
		default:
			content = append(content, rec)
		}
	}

	// Deeper manifests are more specific. Depths are distinct per file
	// since a directory holds at most one manifest; the stable sort keeps
	// collector order as a tiebreak anyway.
	sort.SliceStable(manifests, func(i, j int) bool {
		return manifests[i].Depth > manifests[j].Depth
	})

	// An override entry replaces all other evidence, but only when it is
	// the most specific manifest covering the file. A deeper non-override
	// entry disarms a shallower override.
	if len(manifests) > 0 && manifests[0].Precedence == record.PrecedenceOverride {
		info := record.NewFileInfo(path)
		merge(&info, manifests[0])
		return info
	}

	info := record.NewFileInfo(path)
	for _, rec := range manifests {
		merge(&info, rec)
		if rec.Precedence == record.PrecedenceClosest {
			// Shallower manifests are dropped.
			break
		}
	}
	if len(manifests) == 0 {
		for _, rec := range legacy {
			merge(&info, rec)
		}
	}
	for _, rec := range content {
		merge(&info, rec)
	}
	return info
}

func merge(info *record.FileInfo, rec record.Evidence) {
	info.Copyrights.AddSet(rec.Copyrights)
	info.Expressions.AddSet(rec.Expressions)
	info.Contributors.AddSet(rec.Contributors)
}
