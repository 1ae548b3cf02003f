package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rigup-sh/rigup/internal/ports"
	"golang.org/x/mod/semver"
)

// minGitVersion is the oldest git that supports the features the catalog's
// repository units rely on.
const minGitVersion = "v2.20.0"

// hostRequirement is a binary the provisioner shells out to.
type hostRequirement struct {
	binary  string
	pkgHint string
}

var hostRequirements = []hostRequirement{
	{"apt-get", "apt"},
	{"dpkg-query", "dpkg"},
	{"sudo", "sudo"},
	{"wget", "wget"},
	{"curl", "curl"},
}

// HostCheck is one doctor finding.
type HostCheck struct {
	Name   string
	OK     bool
	Detail string
}

// Doctor verifies the host can run a provisioning pass: required binaries
// on PATH and a recent enough git. Findings are reported, never fatal.
func Doctor(ctx context.Context, runner ports.CommandRunner) []HostCheck {
	checks := make([]HostCheck, 0, len(hostRequirements)+1)

	for _, req := range hostRequirements {
		check := HostCheck{Name: req.binary, OK: true}
		if !runner.LookPath(req.binary) {
			check.OK = false
			check.Detail = fmt.Sprintf("not found; install the %q package", req.pkgHint)
		}
		checks = append(checks, check)
	}

	checks = append(checks, gitVersionCheck(ctx, runner))
	return checks
}

func gitVersionCheck(ctx context.Context, runner ports.CommandRunner) HostCheck {
	check := HostCheck{Name: "git version"}

	result, err := runner.Run(ctx, "git", "--version")
	if err != nil || !result.Success() {
		check.Detail = "git not runnable"
		return check
	}

	// Output shape: "git version 2.39.1".
	fields := strings.Fields(strings.TrimSpace(result.Stdout))
	if len(fields) < 3 {
		check.Detail = fmt.Sprintf("unrecognized output %q", result.Stdout)
		return check
	}

	version := "v" + fields[2]
	if !semver.IsValid(version) {
		check.Detail = fmt.Sprintf("unparseable version %q", fields[2])
		return check
	}
	if semver.Compare(version, minGitVersion) < 0 {
		check.Detail = fmt.Sprintf("%s is older than required %s", fields[2], strings.TrimPrefix(minGitVersion, "v"))
		return check
	}

	check.OK = true
	check.Detail = fields[2]
	return check
}
