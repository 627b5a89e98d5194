package update

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Result holds the outcome of an update check.
type Result struct {
	Latest    string // latest release tag without the "v" prefix
	Current   string // current running version
	UpdateURL string // release page URL
}

// NeedsUpdate returns true if the latest version is newer than current.
func (r *Result) NeedsUpdate() bool {
	return r != nil && compare(r.Latest, r.Current) > 0
}

// Check queries the GitHub API for the latest release of owner/repo. It
// returns nil on any failure (network, status, JSON) so callers can ignore
// update checks entirely.
func Check(owner, repo, currentVersion string) *Result {
	url := fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", owner, repo)

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var rel struct {
		TagName string `json:"tag_name"`
		HTMLURL string `json:"html_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil
	}

	return &Result{
		Latest:    strings.TrimPrefix(rel.TagName, "v"),
		Current:   strings.TrimPrefix(currentVersion, "v"),
		UpdateURL: rel.HTMLURL,
	}
}

// compare orders two major.minor.patch strings. Missing parts count as 0.
func compare(a, b string) int {
	av, bv := split(a), split(b)
	for i := 0; i < 3; i++ {
		if av[i] != bv[i] {
			return av[i] - bv[i]
		}
	}
	return 0
}

func split(v string) [3]int {
	var parts [3]int
	for i, s := range strings.SplitN(v, ".", 3) {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			break
		}
		parts[i] = n
	}
	return parts
}
