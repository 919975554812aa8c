package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB
	maxFuzzInput = 1 << 16
)

var builtinSeeds = []string{
	"",
	"(int[] , int[] )",
	"(new[] { 3} , new[] { 3} )",
	"stackalloc int[] { 1 ,1 }",
	"M(Func<int > , Func<int > )",
	"class C<T> where T : IList<int> { int? x = a ?? b; }",
	"var s = $\"{a}{{b}}\" + @\"c\"\"d\" + \"\"\"raw\"\"\";",
	"x = a >> 2 >= b ? (int)-c : d[1..^1];",
	"#if DEBUG\n// c\n/* b */ f(a ,b) ;\n#endif\n",
	"Dictionary<string, List<int>> d = new() { [\"k\"] = new() };",
	"x = - -y; z = a - -b; p = &q; w = *p;",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".cs" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(append([]byte(nil), input[:maxLen]...), "..."...)
}
