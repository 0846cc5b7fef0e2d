package tui

import "github.com/charmbracelet/lipgloss"

const (
	Black           = lipgloss.Color("#000000")
	Red             = lipgloss.Color("#FF5353")
	Pink            = lipgloss.Color("212")
	Purple          = lipgloss.Color("135")
	Orange          = lipgloss.Color("214")
	Yellow          = lipgloss.Color("#DBBD70")
	Green           = lipgloss.Color("34")
	LightGreen      = lipgloss.Color("86")
	Blue            = lipgloss.Color("63")
	Grey            = lipgloss.Color("#737373")
	LightGrey       = lipgloss.Color("245")
	EvenLighterGrey = lipgloss.Color("253")
	DarkGrey        = lipgloss.Color("#606362")
	White           = lipgloss.Color("#ffffff")
)

var (
	DebugLogLevel = Blue
	InfoLogLevel  = lipgloss.AdaptiveColor{Dark: string(LightGreen), Light: string(Green)}
	ErrorLogLevel = Red
	WarnLogLevel  = Yellow

	ActiveTabColor   = lipgloss.AdaptiveColor{Dark: string(White), Light: string(Black)}
	InactiveTabColor = lipgloss.AdaptiveColor{Dark: string(LightGrey), Light: string(Grey)}

	ScrollButtonColor = lipgloss.AdaptiveColor{Dark: string(LightGrey), Light: string(DarkGrey)}
	CloseControlColor = Grey

	PopupBorderColor = lipgloss.AdaptiveColor{Dark: "244", Light: "250"}

	HelpKey = lipgloss.AdaptiveColor{
		Dark:  "ff",
		Light: "",
	}
	HelpDesc = lipgloss.AdaptiveColor{
		Dark:  "248",
		Light: "246",
	}
)
