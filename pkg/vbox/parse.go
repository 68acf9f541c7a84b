package vbox

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// noValueSentinel is the fixed reply VBoxManage prints when a guest property
// has no value.
const noValueSentinel = "No value set!"

func trimOutput(s string) string {
	return strings.TrimSpace(s)
}

// parseProperty interprets `guestproperty get` output of the shape
// "Value: <text>". The prefix up to the first colon is locale-fixed; the
// trimmed remainder is the value. The sentinel reply and any output without a
// colon both mean "absent".
func parseProperty(stdout string) (string, bool) {
	parts := strings.SplitN(stdout, ":", 2)
	if len(parts) < 2 {
		return "", false
	}
	value := strings.TrimSpace(parts[1])
	if value == noValueSentinel {
		return "", false
	}
	return value, true
}

// parseInfo interprets a machine-readable key=value dump, one pair per line.
// Keys wrapped in double quotes lose exactly one leading and one trailing
// quote. A value starting with a double quote is taken as the substring
// between the first quote and the LAST quote of the value; a value containing
// unescaped quotes before its true terminator therefore truncates early.
// That last-quote-wins rule matches the established behavior and is kept
// as-is. Unquoted values only lose trailing whitespace. Later duplicate keys
// overwrite earlier ones.
func parseInfo(stdout string) map[string]string {
	info := make(map[string]string)
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) < 2 {
			continue
		}
		key, value := parts[0], parts[1]

		if len(key) >= 2 && strings.HasPrefix(key, `"`) && strings.HasSuffix(key, `"`) {
			key = key[1 : len(key)-1]
		}

		if strings.HasPrefix(value, `"`) {
			if last := strings.LastIndex(value[1:], `"`); last >= 0 {
				value = value[1 : last+1]
			} else {
				value = value[1:]
			}
		} else {
			value = strings.TrimRight(value, " \t\r\n")
		}
		info[key] = value
	}
	return info
}

// StatResult describes a guest filesystem path at the moment of the probe.
// At most one of IsDirectory/IsFile/IsLink is true; all false with Exists set
// means the kind could not be determined; all false with Exists unset means
// the path does not exist.
type StatResult struct {
	Exists      bool
	IsDirectory bool
	IsFile      bool
	IsLink      bool
}

var statLinkPattern = regexp.MustCompile(`found, type unknown \(\d+\)`)

// parseStat classifies `guestcontrol stat` output. Match order matters: some
// patterns are substrings of others, so the first match wins.
func parseStat(stdout string) StatResult {
	trimmed := strings.TrimSpace(stdout)
	switch {
	case strings.HasSuffix(trimmed, "Is a directory"):
		return StatResult{Exists: true, IsDirectory: true}
	case strings.Contains(trimmed, "Is a file"):
		return StatResult{Exists: true, IsFile: true}
	case statLinkPattern.MatchString(trimmed):
		return StatResult{Exists: true, IsLink: true}
	case trimmed != "":
		return StatResult{Exists: true}
	default:
		return StatResult{}
	}
}

// VMSummary is one entry of `list vms`.
type VMSummary struct {
	Name string
	UUID uuid.UUID
}

var vmListPattern = regexp.MustCompile(`^"(.*)" \{([0-9a-fA-F-]+)\}$`)

// parseVMList interprets `list vms` output: one `"name" {uuid}` line per
// registered machine. Lines that do not match, or whose identifier is not a
// valid UUID, are skipped.
func parseVMList(stdout string) []VMSummary {
	var vms []VMSummary
	for _, line := range strings.Split(stdout, "\n") {
		m := vmListPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		id, err := uuid.Parse(m[2])
		if err != nil {
			continue
		}
		vms = append(vms, VMSummary{Name: m[1], UUID: id})
	}
	return vms
}
