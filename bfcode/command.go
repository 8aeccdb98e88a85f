package bfcode

// The closed set of BFCode commands. Any tag name not in this set
// is reported as [CmdUnknown] and must be treated as literal text.
type Command uint8
const (
	CmdUnknown Command = iota
	CmdBold
	CmdBoldEnd
	CmdItalic
	CmdItalicEnd
	CmdUnderline
	CmdUnderlineEnd
	CmdStrikethrough
	CmdStrikethroughEnd
	CmdShadow
	CmdShadowEnd
	CmdShake
	CmdShakeEnd
	CmdRainbow
	CmdRainbowEnd
	CmdColor
	CmdColorEnd
	CmdImage
	cmdSentinel
)

var commandNames = [cmdSentinel]string{
	CmdUnknown: "?",
	CmdBold: "b", CmdBoldEnd: "/b",
	CmdItalic: "i", CmdItalicEnd: "/i",
	CmdUnderline: "u", CmdUnderlineEnd: "/u",
	CmdStrikethrough: "s", CmdStrikethroughEnd: "/s",
	CmdShadow: "shadow", CmdShadowEnd: "/shadow",
	CmdShake: "shake", CmdShakeEnd: "/shake",
	CmdRainbow: "rainbow", CmdRainbowEnd: "/rainbow",
	CmdColor: "color", CmdColorEnd: "/color",
	CmdImage: "image",
}

// Returns the command that matches the given tag name, or
// [CmdUnknown] if none. Names are case sensitive.
func LookupCommand(name string) Command {
	switch name {
	case "b"       : return CmdBold
	case "/b"      : return CmdBoldEnd
	case "i"       : return CmdItalic
	case "/i"      : return CmdItalicEnd
	case "u"       : return CmdUnderline
	case "/u"      : return CmdUnderlineEnd
	case "s"       : return CmdStrikethrough
	case "/s"      : return CmdStrikethroughEnd
	case "shadow"  : return CmdShadow
	case "/shadow" : return CmdShadowEnd
	case "shake"   : return CmdShake
	case "/shake"  : return CmdShakeEnd
	case "rainbow" : return CmdRainbow
	case "/rainbow": return CmdRainbowEnd
	case "color"   : return CmdColor
	case "/color"  : return CmdColorEnd
	case "image"   : return CmdImage
	default:
		return CmdUnknown
	}
}

// Returns the tag name of the command ("b", "/shake", etc.).
func (self Command) String() string {
	if self >= cmdSentinel { return "?" }
	return commandNames[self]
}

// Returns whether the command saves the render color state when opened
// (and restores it when closed).
func (self Command) PushesColor() bool {
	return self == CmdColor || self == CmdRainbow
}

// Returns whether the command restores a previously saved render color state.
func (self Command) PopsColor() bool {
	return self == CmdColorEnd || self == CmdRainbowEnd
}
