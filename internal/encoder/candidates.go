package encoder

import "strings"

// Candidate names one hardware encoder the selector may probe.
type Candidate struct {
	Name      string
	EncoderID string
	ExtraArgs []string
}

// catalog maps accelerator names to their ffmpeg encoder configuration.
var catalog = map[string]Candidate{
	"videotoolbox": {Name: "videotoolbox", EncoderID: "hevc_videotoolbox"},
	"nvenc":        {Name: "nvenc", EncoderID: "hevc_nvenc", ExtraArgs: []string{"-preset", "p4"}},
	"qsv":          {Name: "qsv", EncoderID: "hevc_qsv"},
	"vaapi":        {Name: "vaapi", EncoderID: "hevc_vaapi", ExtraArgs: []string{"-vaapi_device", "/dev/dri/renderD128", "-vf", "format=nv12,hwupload"}},
	"amf":          {Name: "amf", EncoderID: "hevc_amf"},
}

// platformOrder lists probe priority per host OS. Data, not branching: an
// unlisted platform simply has nothing to probe.
var platformOrder = map[string][]string{
	"darwin":  {"videotoolbox"},
	"linux":   {"nvenc", "qsv", "vaapi"},
	"windows": {"nvenc", "qsv", "amf"},
}

// Lookup resolves an accelerator name from the static catalog.
func Lookup(name string) (Candidate, bool) {
	candidate, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	return candidate, ok
}

// Names returns the accelerator names the catalog knows about.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	return names
}

func candidatesFor(goos string) []Candidate {
	order := platformOrder[goos]
	out := make([]Candidate, 0, len(order))
	for _, name := range order {
		out = append(out, catalog[name])
	}
	return out
}
