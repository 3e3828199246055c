package models

import (
	"regexp"
	"strconv"

	"arksave/ark"
)

// TribeMember is one entry of a tribe's member roster.
type TribeMember struct {
	PlayerName   string
	PlayerDataID int64
}

// Tribe is the projection of a `.arktribe` root object (spec §4.9, §8
// scenario 2).
type Tribe struct {
	TribeName string
	TribeID   int64
	Members   []TribeMember
	Logs      []TribeLogEntry
}

// NewTribe builds a Tribe from a decoded PrimalTribeData object.
func NewTribe(obj *ark.GameObject) *Tribe {
	t := &Tribe{
		TribeName: stringValue(obj.Properties, "TribeName", ""),
		TribeID:   intValue(obj.Properties, "TribeID", 0),
	}
	t.Members = tribeMembers(obj.Properties)
	t.Logs = tribeLogs(obj.Properties)
	return t
}

func tribeMembers(props []ark.Property) []TribeMember {
	names, _ := findProp(props, "MembersPlayerName")
	ids, _ := findProp(props, "MembersPlayerDataID")
	var nameList, idList []any
	if names != nil {
		if av, ok := names.Value.(ark.ArrayValue); ok {
			nameList = av.Items
		}
	}
	if ids != nil {
		if av, ok := ids.Value.(ark.ArrayValue); ok {
			idList = av.Items
		}
	}
	n := len(nameList)
	if len(idList) < n {
		n = len(idList)
	}
	members := make([]TribeMember, 0, n)
	for i := 0; i < n; i++ {
		name, _ := nameList[i].(string)
		id, _ := toFloat64(idList[i])
		members = append(members, TribeMember{PlayerName: name, PlayerDataID: int64(id)})
	}
	return members
}

// TribeLogEntry is a single parsed tribe-log line (spec §4.9, §8 scenario
// 2).
type TribeLogEntry struct {
	Day          int
	Time         string
	RawMessage   string
	CleanMessage string
}

var tribeLogLineRE = regexp.MustCompile(`^Day (\d+), (\d{2}:\d{2}:\d{2}): (.*)$`)
var richColorTagRE = regexp.MustCompile(`<RichColor[^>]*>(.*?)</>`)

// ParseTribeLogLine parses one "Day D, HH:MM:SS: body" line and strips
// `<RichColor ...>text</>` tags from the body (spec §4.9, §8 scenario 2).
func ParseTribeLogLine(line string) (TribeLogEntry, bool) {
	m := tribeLogLineRE.FindStringSubmatch(line)
	if m == nil {
		return TribeLogEntry{}, false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return TribeLogEntry{}, false
	}
	raw := m[3]
	clean := richColorTagRE.ReplaceAllString(raw, "$1")
	return TribeLogEntry{Day: day, Time: m[2], RawMessage: raw, CleanMessage: clean}, true
}

func tribeLogs(props []ark.Property) []TribeLogEntry {
	p, ok := findProp(props, "TribeLogs")
	if !ok {
		return nil
	}
	av, ok := p.Value.(ark.ArrayValue)
	if !ok {
		return nil
	}
	var out []TribeLogEntry
	for _, item := range av.Items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if entry, ok := ParseTribeLogLine(s); ok {
			out = append(out, entry)
		}
	}
	return out
}
