package formatter

import (
	"github.com/xlab/treeprint"

	"github.com/oakwood-commons/cxcomplete/internal/completion"
)

// RenderTree groups records under their category, in order of first
// appearance:
//
//	.
//	├── function
//	│   └── at(size_type n) const: const_reference
//	└── variable
//	    └── count
func RenderTree(records []completion.Record) string {
	tree := treeprint.New()
	branches := map[completion.Category]treeprint.Tree{}
	for _, rec := range records {
		branch, ok := branches[rec.Category]
		if !ok {
			branch = tree.AddBranch(rec.Category.String())
			branches[rec.Category] = branch
		}
		label := rec.DisplayText
		if label == "" {
			label = "(no completion string)"
		}
		if rec.Annotation != "" {
			label += ": " + rec.Annotation
		}
		branch.AddNode(label)
	}
	return tree.String()
}
