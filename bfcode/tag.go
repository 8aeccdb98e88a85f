package bfcode

import "errors"
import "strconv"
import "strings"

import "github.com/tinne26/bftxt/argb"

// Returned by [ParseAt] when no closing ']' exists. Recoverable:
// the opening '[' must be treated as a literal character.
var ErrUnterminated = errors.New("bfcode: unterminated tag")

// Returned by [ParseAt] when the tag name is not a known [Command].
// Recoverable: the opening '[' must be treated as a literal character.
var ErrUnknownCommand = errors.New("bfcode: unknown command")

// The largest intensity accepted by "[shake=n]". Bigger values are
// reported as an [*ArgumentError].
const MaxShakeIntensity = 255

// A tag parsed from BFCode markup.
//
// Tags are transient values: the Args slice points to freshly split
// strings, but nothing else refers to the tag once the scan step that
// created it is over.
type Tag struct {
	Command Command
	Name string // raw command name, as written
	Args []string // nil if the tag had no '='

	// Parsed arguments. Only the field relevant to the
	// command is set; the others remain zero.
	Intensity int // CmdShake, defaults to 1
	Color argb.Color // CmdColor
	Image int // CmdImage
}

// An error caused by a recognized command with malformed arguments,
// like "[shake=fast]" or "[color=1,2]". Unlike unterminated or unknown
// tags, argument errors are not recoverable and must be reported to
// the caller.
type ArgumentError struct {
	Command Command
	Args []string
	Reason string
	Err error // underlying cause, may be nil
}

func (self *ArgumentError) Error() string {
	msg := "bfcode: invalid arguments for [" + self.Command.String()
	if len(self.Args) > 0 { msg += "=" + strings.Join(self.Args, ",") }
	msg += "]: " + self.Reason
	if self.Err != nil { msg += " (" + self.Err.Error() + ")" }
	return msg
}

func (self *ArgumentError) Unwrap() error { return self.Err }

// Returns whether the text could contain any tag at all. When it
// returns false, scanning for tags can be skipped entirely.
func MayContainTags(text string) bool {
	return strings.IndexByte(text, '[') != -1
}

// Parses the tag starting at text[index], which must be '['.
//
// On success, it returns the tag and the index right after its
// closing ']'. On failure, the returned index is the given one, and
// the error is either [ErrUnterminated], [ErrUnknownCommand] (both
// recoverable) or an [*ArgumentError].
func ParseAt(text string, index int) (Tag, int, error) {
	if index < 0 || index >= len(text) || text[index] != '[' {
		panic("bfcode.ParseAt requires text[index] == '['")
	}

	closing := strings.IndexByte(text[index + 1 : ], ']')
	if closing == -1 { return Tag{}, index, ErrUnterminated }
	end := index + 1 + closing

	name, rawArgs, hasArgs := strings.Cut(text[index + 1 : end], "=")
	command := LookupCommand(name)
	if command == CmdUnknown { return Tag{}, index, ErrUnknownCommand }

	tag := Tag{ Command: command, Name: name }
	if hasArgs { tag.Args = strings.Split(rawArgs, ",") }
	err := tag.parseArgs()
	if err != nil { return tag, index, err }
	return tag, end + 1, nil
}

// Returns whether the error returned by [ParseAt] means that
// the '[' must be processed as a literal character.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrUnterminated) || errors.Is(err, ErrUnknownCommand)
}

func (self *Tag) parseArgs() error {
	switch self.Command {
	case CmdShake:
		self.Intensity = 1
		if self.Args == nil { return nil }
		if len(self.Args) != 1 { return self.argErr("expected a single intensity value", nil) }
		intensity, err := strconv.Atoi(strings.TrimSpace(self.Args[0]))
		if errors.Is(err, strconv.ErrRange) { return self.argErr("intensity too large", err) }
		if err != nil { return self.argErr("non-numeric intensity", err) }
		if intensity < 0 { return self.argErr("negative intensity", nil) }
		if intensity > MaxShakeIntensity { return self.argErr("intensity too large", nil) }
		self.Intensity = intensity
	case CmdColor:
		switch len(self.Args) {
		case 0:
			return self.argErr("missing color value", nil)
		case 1:
			clr, err := argb.Parse(self.Args[0])
			if err != nil { return self.argErr("malformed color", err) }
			self.Color = clr
		case 3:
			var rgb [3]uint8
			for i, arg := range self.Args {
				value, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 8)
				if err != nil { return self.argErr("malformed color component", err) }
				rgb[i] = uint8(value)
			}
			self.Color = argb.FromRGB(rgb[0], rgb[1], rgb[2])
		default:
			return self.argErr("expected r,g,b or a single color value", nil)
		}
	case CmdImage:
		if len(self.Args) != 1 { return self.argErr("expected a single image id", nil) }
		id, err := strconv.Atoi(strings.TrimSpace(self.Args[0]))
		if err != nil { return self.argErr("non-numeric image id", err) }
		if id < 0 { return self.argErr("negative image id", nil) }
		self.Image = id
	default:
		// remaining commands take no arguments, extra ones are ignored
	}
	return nil
}

func (self *Tag) argErr(reason string, cause error) error {
	return &ArgumentError{ Command: self.Command, Args: self.Args, Reason: reason, Err: cause }
}
