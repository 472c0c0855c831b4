package main

import (
	"flag"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/scylladb/go-set/strset"
	"go.uber.org/zap"

	"github.com/rdeusser/fuzzy/zappretty"
)

func ensureModPath() error {
	_, err := os.Stat("go.mod")
	return err
}

// findTestData returns the package directories, relative to the module root,
// that own a testdata directory.
func findTestData(root string) ([]string, error) {
	pkgs := strset.New()

	err := fs.WalkDir(os.DirFS(root), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		name := d.Name()
		if path != "." && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "vendor") {
			return fs.SkipDir
		}

		if name == "testdata" {
			pkgs.Add(filepath.Dir(path))
			return fs.SkipDir
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	paths := pkgs.List()
	sort.Strings(paths)

	return paths, nil
}

func updateTestData(pkg, run string) error {
	args := []string{"test", "-v", "-timeout", "2m", "-count=1"}
	if run != "" {
		args = append(args, "-run", run)
	}
	args = append(args, "./"+filepath.ToSlash(pkg), "-update")

	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func main() {
	var (
		run     string
		verbose bool
	)

	flag.StringVar(&run, "run", "", "only update tests matching this regular expression")
	flag.BoolVar(&verbose, "v", false, "log debug output")
	flag.Parse()

	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	logger := zappretty.NewLogger("update-testdata", os.Stderr, level)
	defer func() {
		_ = logger.Sync()
	}()

	if err := ensureModPath(); err != nil {
		logger.Fatal("must be run from the module root", zap.Error(err))
	}

	paths, err := findTestData(".")
	if err != nil {
		logger.Fatal("searching for testdata", zap.Error(err))
	}

	logger.Debug("found testdata", zap.Strings("packages", paths))

	var failed []string

	for _, path := range paths {
		logger.Info("updating testdata", zap.String("package", path))

		if err := updateTestData(path, run); err != nil {
			logger.Error("update failed", zap.String("package", path), zap.Error(err))
			failed = append(failed, path)
		}
	}

	if len(failed) > 0 {
		logger.Error("some packages failed to update", zap.Strings("packages", failed))
		_ = logger.Sync()
		os.Exit(1)
	}

	logger.Info("successfully updated testdata!", zap.Int("packages", len(paths)))
}
