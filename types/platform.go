package types

// EarningsPlatform identifies where a shift's earnings came from. The set is
// closed; display metadata lives here rather than at each call site.
type EarningsPlatform string

const (
	PlatformUber EarningsPlatform = "UBER"
	PlatformBolt EarningsPlatform = "BOLT"
	PlatformTips EarningsPlatform = "TIPS"
)

var platformMeta = map[EarningsPlatform]struct {
	label string
	color string
}{
	PlatformUber: {label: "Uber", color: "#000000"},
	PlatformBolt: {label: "Bolt", color: "#34D186"},
	PlatformTips: {label: "Gorjetas", color: "#F59E0B"},
}

// AllPlatforms lists every platform in display order.
func AllPlatforms() []EarningsPlatform {
	return []EarningsPlatform{PlatformUber, PlatformBolt, PlatformTips}
}

func (p EarningsPlatform) IsValid() bool {
	_, ok := platformMeta[p]
	return ok
}

// Label returns the human-readable platform name.
func (p EarningsPlatform) Label() string {
	return platformMeta[p].label
}

// Color returns the hex color used for this platform in charts.
func (p EarningsPlatform) Color() string {
	return platformMeta[p].color
}

func (p EarningsPlatform) String() string {
	return string(p)
}
