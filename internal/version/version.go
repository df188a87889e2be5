package version

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

// buildEpoch — день, от которого считается номер сборки.
var buildEpoch = time.Date(
	2026, time.January, 1,
	0, 0, 0, 0,
	time.UTC,
)

// VersionInfo describes the build metadata in structured form.
type VersionInfo struct {
	BuildID    int
	BuildDate  string
	Commit     string
	Branch     string
	CI         string
	GoVersion  string
	Module     string
	Calculated bool
	Error      string
}

func CalculateBuildID() (int, error) {
	return buildIDFor(BuildDate)
}

// buildIDFor — число полных дней от buildEpoch до date.
func buildIDFor(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", date, err)
	}

	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", date)
	}

	// Using hours avoids DST issues; epoch and build date are both UTC.
	days := int(t.Sub(buildEpoch).Hours() / 24)
	return days, nil
}

// Info returns structured version information.
// Safe to call at any time.
func Info() VersionInfo {
	id, err := CalculateBuildID()

	info := VersionInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
		CI:        BuildCI,
	}
	fillFromBuildInfo(&info)

	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

// String returns a human-readable build string.
func String() string {
	info := Info()

	if !info.Calculated {
		return fmt.Sprintf("Build unknown (%s)", info.Error)
	}

	return fmt.Sprintf(
		"Build %d (%s) commit[%s] branch[%s] ci[%s]",
		info.BuildID,
		info.BuildDate,
		coalesce(info.Commit, "unknown"),
		coalesce(info.Branch, "unknown"),
		coalesce(info.CI, "local"),
	)
}

// fillFromBuildInfo добирает то, что не передали через -ldflags:
// версию Go, путь модуля и ревизию VCS.
func fillFromBuildInfo(info *VersionInfo) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	info.GoVersion = bi.GoVersion
	info.Module = bi.Main.Path
	if info.Commit != "" {
		return
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			info.Commit = s.Value
			break
		}
	}
}

// Fields — то же для структурного лога.
func (i VersionInfo) Fields() logrus.Fields {
	f := logrus.Fields{
		"commit": coalesce(i.Commit, "unknown"),
		"branch": coalesce(i.Branch, "unknown"),
		"ci":     coalesce(i.CI, "local"),
		"go":     i.GoVersion,
	}
	if i.Calculated {
		f["build"] = i.BuildID
		f["build_date"] = i.BuildDate
	}
	return f
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
