package engine_test

import (
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"

	"spacelint/internal/classify"
	"spacelint/internal/diag"
	"spacelint/internal/engine"
	"spacelint/internal/rules"
	"spacelint/internal/source"
	"spacelint/internal/stream"
	"spacelint/internal/token"
)

func newFile(src string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("test.cs", []byte(src)))
}

func only(codes ...diag.Code) engine.Options {
	opts := engine.DefaultOptions()
	opts.Rules = rules.Only(codes...)
	return opts
}

func analyze(t *testing.T, src string, opts engine.Options) *engine.Result {
	t.Helper()
	res, err := engine.Analyze(newFile(src), opts)
	if err != nil {
		t.Fatalf("Analyze(%q): %v", src, err)
	}
	return res
}

func TestSingleFixScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"comma after rank specifier", "(int[] , int[] )", "(int[], int[] )"},
		{"comma after initializer", "(new[] { 3} , new[] { 3} )", "(new[] { 3}, new[] { 3} )"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := newFile(tt.src)
			opts := only(diag.SpComma)
			res, err := engine.Analyze(file, opts)
			if err != nil {
				t.Fatal(err)
			}
			if len(res.Diagnostics) != 1 {
				t.Fatalf("want 1 diagnostic, got %d", len(res.Diagnostics))
			}
			d := res.Diagnostics[0]
			if d.Polarity() != "not" || d.Direction() != "preceded" {
				t.Fatalf("args = %v", d.Args)
			}
			fixed, err := engine.FixOne(file, d, opts)
			if err != nil {
				t.Fatal(err)
			}
			if got := string(fixed.File.Content); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			if len(fixed.Remaining) != 0 {
				t.Fatalf("remaining: %v", fixed.Remaining)
			}
		})
	}
}

func TestBatchFixScenarios(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		opts  engine.Options
		diags int
		want  string
	}{
		{
			name:  "stackalloc comma",
			src:   "stackalloc int[] { 1 ,1 }",
			opts:  only(diag.SpComma),
			diags: 2,
			want:  "stackalloc int[] { 1, 1 }",
		},
		{
			name:  "generic close before comma",
			src:   "M(Func<int > , Func<int > )",
			opts:  only(diag.SpCloseAngle),
			diags: 4,
			want:  "M(Func<int>, Func<int>)",
		},
		{
			name:  "generic close with every rule",
			src:   "M(Func<int > , Func<int > )",
			opts:  engine.DefaultOptions(),
			diags: 6,
			want:  "M(Func<int>, Func<int>)",
		},
		{
			name:  "index initializer",
			src:   "var d = new Foo {[0]=1,[1]=2};",
			opts:  engine.DefaultOptions(),
			diags: 9,
			want:  "var d = new Foo { [0] = 1, [1] = 2 };",
		},
		{
			name:  "clean index initializer",
			src:   "class C { void M() { var d = new Foo { [0] = 1 }; } }",
			opts:  engine.DefaultOptions(),
			diags: 0,
			want:  "class C { void M() { var d = new Foo { [0] = 1 }; } }",
		},
		{
			name:  "clean target-typed index initializer",
			src:   "Dictionary<string, List<int>> d = new() { [\"k\"] = new() };",
			opts:  engine.DefaultOptions(),
			diags: 0,
			want:  "Dictionary<string, List<int>> d = new() { [\"k\"] = new() };",
		},
		{
			name:  "clean file",
			src:   "class C\n{\n    int[] a = { 1, 2 };\n}\n",
			opts:  engine.DefaultOptions(),
			diags: 0,
			want:  "class C\n{\n    int[] a = { 1, 2 };\n}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(analyze(t, tt.src, tt.opts).Diagnostics); got != tt.diags {
				t.Fatalf("want %d diagnostics, got %d", tt.diags, got)
			}
			res, err := engine.FixAll(newFile(tt.src), tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if got := string(res.File.Content); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			if res.Passes > engine.MaxFixPasses {
				t.Fatalf("passes = %d", res.Passes)
			}
			if tt.diags == 0 && res.Passes != 0 {
				t.Fatalf("clean file needed %d passes", res.Passes)
			}
		})
	}
}

const messy = `class C{
    int[] a={1 ,2};
    void M(int x,int y){
        if(x>y) {
            var l=new List<int>{1,2};
            x=-y;
            l[0]++;
        }
    }
}
`

const tidy = `class C {
    int[] a = { 1, 2 };
    void M(int x, int y) {
        if (x > y) {
            var l = new List<int> { 1, 2 };
            x = -y;
            l[0]++;
        }
    }
}
`

func TestFixAllRealisticFile(t *testing.T) {
	res, err := engine.FixAll(newFile(messy), engine.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(tidy, string(res.File.Content)); diff != "" {
		t.Fatalf("fixed text (-want +got):\n%s", diff)
	}
	if res.Fixed == 0 {
		t.Fatal("Fixed must count resolved diagnostics")
	}
}

func TestFixAllIdempotent(t *testing.T) {
	first, err := engine.FixAll(newFile(messy), engine.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	second, err := engine.FixAll(first.File, engine.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if string(first.File.Content) != string(second.File.Content) || second.Passes != 0 {
		t.Fatalf("second fix changed text in %d passes", second.Passes)
	}
}

func TestFixOneIsLocal(t *testing.T) {
	file := newFile(messy)
	opts := engine.DefaultOptions()
	res := analyze(t, messy, opts)
	for _, d := range res.Diagnostics {
		fixed, err := engine.FixOne(file, d, opts)
		if err != nil {
			t.Fatal(err)
		}
		got := string(fixed.File.Content)
		start, end := d.Primary.Start, d.Primary.End
		if got[:start] != messy[:start] {
			t.Fatalf("%s: text before %d changed", d.Code.ID(), start)
		}
		if !strings.HasSuffix(got, messy[end:]) {
			t.Fatalf("%s: text after %d changed", d.Code.ID(), end)
		}
		if squeeze(got) != squeeze(messy) {
			t.Fatalf("%s: non-whitespace changed", d.Code.ID())
		}
	}
}

func TestAnalyzeSkipsSyntaxErrors(t *testing.T) {
	res, err := engine.Analyze(newFile("x = \"open;\n"), engine.DefaultOptions())
	if !errors.Is(err, engine.ErrSkipped) {
		t.Fatalf("want ErrSkipped, got %v", err)
	}
	if res == nil || len(res.Syntax) == 0 || len(res.Diagnostics) != 0 {
		t.Fatalf("skipped result = %+v", res)
	}
}

func TestAnalyzeFailsClosed(t *testing.T) {
	cases := []struct {
		src  string
		want error
	}{
		{"f(a];", stream.ErrUnbalanced},
		{"A<B<C><D>> x;", classify.ErrInconsistent},
	}
	for _, tc := range cases {
		res, err := engine.Analyze(newFile(tc.src), engine.DefaultOptions())
		if !errors.Is(err, tc.want) {
			t.Fatalf("%q: want %v, got %v", tc.src, tc.want, err)
		}
		if res != nil {
			t.Fatalf("%q: failed analysis must not return diagnostics", tc.src)
		}
	}
}

// forbidSpaceBeforeParen returns the default table with the space before a
// parenthesised expression forbidden, which fights the comma rule.
func forbidSpaceBeforeParen() *rules.Table {
	t := rules.Default()
	for _, r := range []classify.Role{classify.TupleOpenParen, classify.CastOpenParen, classify.GroupingOpenParen} {
		p, ok := t.Lookup(token.LParen, r)
		if !ok {
			panic("no policy for " + r.String())
		}
		p.Before = rules.SidePolicy{Mode: rules.Forbid}
		t.Set(token.LParen, p, r)
	}
	return t
}

func TestFixAllReportsUnresolvedConflict(t *testing.T) {
	opts := engine.DefaultOptions()
	opts.Table = forbidSpaceBeforeParen()
	res, err := engine.FixAll(newFile("f(a,(b));"), opts)
	if !errors.Is(err, engine.ErrFixpointNotReached) {
		t.Fatalf("want ErrFixpointNotReached, got %v", err)
	}
	if res == nil {
		t.Fatal("unresolved fix must still return the improved file")
	}
	// pass 1 inserts the space after ',' and pass 2 removes it again
	if res.Passes != engine.MaxFixPasses {
		t.Fatalf("passes = %d, want %d", res.Passes, engine.MaxFixPasses)
	}
	if got := string(res.File.Content); got != "f(a,(b));" {
		t.Fatalf("content = %q", got)
	}
	if len(res.Remaining) != 1 || res.Remaining[0].Code != diag.SpComma {
		t.Fatalf("remaining = %v", res.Remaining)
	}
	if res.Remaining[0].Primary.Start != 4 {
		t.Fatalf("remaining diagnostic at %v, want offset 4", res.Remaining[0].Primary)
	}
}

func TestDisabledRulesAreIgnoredByFix(t *testing.T) {
	res, err := engine.FixAll(newFile("a=b ,c;"), only(diag.SpComma))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(res.File.Content); got != "a=b, c;" {
		t.Fatalf("got %q", got)
	}
}

func squeeze(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
