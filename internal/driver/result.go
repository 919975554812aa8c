package driver

import (
	"spacelint/internal/diag"
	"spacelint/internal/observ"
	"spacelint/internal/source"
)

// FileStatus is the outcome class of one file.
type FileStatus uint8

const (
	// FileOK means the file was analysed; it may still have diagnostics.
	FileOK FileStatus = iota
	// FileSkipped means the file has host syntax errors and was not analysed.
	FileSkipped
	// FileFailed means loading failed, the run was cancelled, or an internal
	// inconsistency was detected. No spacing diagnostics are reported.
	FileFailed
)

var fileStatusNames = [...]string{
	FileOK:      "ok",
	FileSkipped: "skipped",
	FileFailed:  "failed",
}

func (s FileStatus) String() string {
	if int(s) < len(fileStatusNames) {
		return fileStatusNames[s]
	}
	return "unknown"
}

// FileResult is the outcome of one file.
type FileResult struct {
	Path   string
	File   *source.File
	Status FileStatus
	// Diagnostics are positioned in Fixed when the file was rewritten,
	// otherwise in File.
	Diagnostics []diag.Diagnostic
	// Dropped counts diagnostics cut by Options.MaxDiagnostics.
	Dropped int
	// Syntax holds the host syntax errors of a skipped file.
	Syntax  []diag.Diagnostic
	Err     error
	Cached  bool
	Timings observ.Report

	// Fixed is the rewritten version registered in the report's FileSet,
	// nil when fixing changed nothing.
	Fixed    *source.File
	Passes   int
	Resolved int
	// Unresolved is set when fixing stopped with diagnostics left.
	Unresolved bool
}

// Changed reports whether fixing rewrote the file.
func (r *FileResult) Changed() bool { return r.Fixed != nil }

// Current returns the newest version of the file.
func (r *FileResult) Current() *source.File {
	if r.Fixed != nil {
		return r.Fixed
	}
	return r.File
}

// Report collects the results of a multi-file run in path order.
type Report struct {
	FileSet *source.FileSet
	Files   []FileResult
}

// Diagnostics returns every spacing diagnostic and syntax error, file by file.
func (r *Report) Diagnostics() []diag.Diagnostic {
	var out []diag.Diagnostic
	for i := range r.Files {
		out = append(out, r.Files[i].Syntax...)
		out = append(out, r.Files[i].Diagnostics...)
	}
	return out
}

// Count returns how many files ended with status st.
func (r *Report) Count(st FileStatus) int {
	n := 0
	for i := range r.Files {
		if r.Files[i].Status == st {
			n++
		}
	}
	return n
}

// HasDiagnostics reports whether any file still has spacing diagnostics.
func (r *Report) HasDiagnostics() bool {
	for i := range r.Files {
		if len(r.Files[i].Diagnostics) > 0 {
			return true
		}
	}
	return false
}

// Changed returns the files rewritten by Fix.
func (r *Report) Changed() []*FileResult {
	var out []*FileResult
	for i := range r.Files {
		if r.Files[i].Changed() {
			out = append(out, &r.Files[i])
		}
	}
	return out
}

// Timings merges the per-file phase timings.
func (r *Report) Timings() observ.Report {
	reports := make([]observ.Report, 0, len(r.Files))
	for i := range r.Files {
		reports = append(reports, r.Files[i].Timings)
	}
	return observ.Merge(reports...)
}

// capDiagnostics keeps at most limit diagnostics.
func capDiagnostics(ds []diag.Diagnostic, limit int) ([]diag.Diagnostic, int) {
	if limit <= 0 || len(ds) <= limit {
		return ds, 0
	}
	bag := diag.NewBag(limit)
	bag.AddAll(ds)
	return bag.Items(), bag.Dropped()
}
