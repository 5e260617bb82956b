package planner

import (
	"context"
	"sort"

	"github.com/backmassage/typecopy/internal/classify"
	"github.com/backmassage/typecopy/internal/extension"
)

// Logger is the minimal logging interface needed by BuildPlan.
type Logger interface {
	Warn(string, ...interface{})
	Debug(string, ...interface{})
}

// Resolve classifies path and resolves its description against table. A
// classifier error is returned alongside a miss for the empty description;
// only the caller decides whether that is fatal.
func Resolve(ctx context.Context, c classify.Classifier, table *extension.Table, path string) (extension.Resolution, error) {
	desc, err := c.Describe(ctx, path)
	if err != nil {
		return table.Resolve(""), err
	}
	return table.Resolve(desc), nil
}

// BuildPlan resolves every file and collects the distinct failing
// descriptions. It always runs over the whole set so all unknown types are
// reported at once; only context cancellation stops it early.
//
// Flow:
//  1. Classify each file (a classifier error becomes an empty description)
//  2. Resolve the description's first token against table
//  3. Gather misses into a sorted, de-duplicated list
func BuildPlan(ctx context.Context, files []string, c classify.Classifier, table *extension.Table, log Logger) (*Plan, error) {
	plan := &Plan{Files: make([]FilePlan, 0, len(files))}
	failed := make(map[string]struct{})

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := Resolve(ctx, c, table, path)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warn("Cannot classify %s: %v", path, err)
		}
		log.Debug("%s: %s", path, res.Description())

		plan.Files = append(plan.Files, FilePlan{Source: path, Resolution: res, ClassErr: err})
		if !res.OK() {
			failed[res.String()] = struct{}{}
		}
	}

	plan.Unresolved = make([]string, 0, len(failed))
	for desc := range failed {
		plan.Unresolved = append(plan.Unresolved, desc)
	}
	sort.Strings(plan.Unresolved)
	return plan, nil
}
