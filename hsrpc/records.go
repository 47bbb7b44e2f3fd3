package hsrpc

import "encoding/json"

// Record kinds published for a top-level name on the chain.
const (
	KindNS     = "NS"
	KindGlue4  = "GLUE4"
	KindGlue6  = "GLUE6"
	KindTXT    = "TXT"
	KindSynth4 = "SYNTH4"
	KindSynth6 = "SYNTH6"
)

// Record is one entry from a name's published record set. Fields are
// populated according to Type. Records of kinds this package does not know
// about are carried through unaltered so that newer chain record kinds do
// not cause decode failures.
type Record struct {
	Type    string   `json:"type"`
	NS      string   `json:"ns,omitempty"`
	Address string   `json:"address,omitempty"`
	TXT     []string `json:"txt,omitempty"`
}

// IsGlue returns true for an address binding paired with an NS record by
// shared NS value.
func (r *Record) IsGlue() bool {
	return r.Type == KindGlue4 || r.Type == KindGlue6
}

// IsSynth returns true for an address synthesized directly from the
// queried name.
func (r *Record) IsSynth() bool {
	return r.Type == KindSynth4 || r.Type == KindSynth6
}

// NameResource is the result payload of a getnameresource call.
type NameResource struct {
	Records []Record `json:"records"`
}

// ParseNameResource decodes a getnameresource result. A JSON null result
// indicates the name has no published resource and yields a nil record set.
func ParseNameResource(raw json.RawMessage) ([]Record, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	res := &NameResource{}
	err := json.Unmarshal(raw, res)
	if err != nil {
		return nil, err
	}

	return res.Records, nil
}
