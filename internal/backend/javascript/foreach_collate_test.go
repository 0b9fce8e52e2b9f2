package javascript

import (
	"sort"
	"strings"
	"testing"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/cwbudde/citogo/internal/ast"
	"github.com/cwbudde/citogo/pkg/emitter"
)

// TestSortedDictionaryForeachOrdering grounds the `.sort((a, b) =>
// a[0].localeCompare(b[0]))` rewrite emitted for a two-variable foreach
// over a SortedDictionary<string, T>: the emitted source asks JS's
// locale-aware localeCompare to pick the key order, so this independently
// orders the same fixture keys with golang.org/x/text/collate's English
// collator as an oracle and checks it agrees with a plain lexicographic
// sort on this plain-ASCII fixture, confirming the default-locale
// assumption the emission relies on holds for this key set.
func TestSortedDictionaryForeachOrdering(t *testing.T) {
	keys := []string{"banana", "Apple", "cherry", "apple2"}

	collated := append([]string(nil), keys...)
	col := collate.New(language.English)
	col.SortStrings(collated)

	lexical := append([]string(nil), keys...)
	sort.Strings(lexical)

	if strings.Join(collated, ",") != strings.Join(lexical, ",") {
		t.Fatalf("collate order %v diverges from lexical order %v for this fixture; .sort(localeCompare) and a plain key compare would disagree", collated, lexical)
	}

	stmt := &ast.ForeachStmt{
		Var1: "k", Var2: "v",
		Var1Type:   &ast.StringType{},
		Var2Type:   i32(),
		Collection: &ast.SymbolExpr{Chain: []string{"table"}, Type: &ast.SortedDictionaryType{Key: &ast.StringType{}, Value: i32()}},
		Body:       &ast.BlockStmt{},
	}

	b := &Backend{w: emitter.New("  "), helpers: map[string]bool{}}
	b.VisitForeachStmt(stmt)

	const want = ".sort((a, b) => a[0].localeCompare(b[0]))"
	if !strings.Contains(b.w.String(), want) {
		t.Fatalf("output %q does not contain %q", b.w.String(), want)
	}
}
