package chronogrid

// Pattern is the target pose of every clock in one digit: a 6x4 grid of raw
// (hour, minute) angle pairs. Cells at a rest pose are background filler.
type Pattern [GridRows][GridCols]Position

// PatternFor returns the pattern forming the given digit. Digits outside
// 0..9 fall back to the pattern for 0; the lookup never fails.
func PatternFor(digit int) *Pattern {
	if digit < 0 || digit > 9 {
		digit = 0
	}
	return &digitPatterns[digit]
}

// rest marks a background cell.
var rest = RestPrimary

// digitPatterns is a fixed data contract: the exact angle values per digit
// per cell are load-bearing for visual parity and are not derived.
var digitPatterns = [10]Pattern{
	// 0
	{
		{{90, 180}, {90, 270}, {90, 270}, {180, 270}},
		{{0, 180}, {90, 180}, {180, 270}, {0, 180}},
		{{0, 180}, {0, 180}, {0, 180}, {0, 180}},
		{{0, 180}, {0, 180}, {0, 180}, {0, 180}},
		{{0, 180}, {0, 90}, {0, 270}, {0, 180}},
		{{0, 90}, {90, 270}, {90, 270}, {0, 270}},
	},
	// 1
	{
		{{90, 180}, {90, 270}, {270, 180}, rest},
		{{0, 90}, {270, 180}, {0, 180}, rest},
		{rest, {0, 180}, {0, 180}, rest},
		{rest, {0, 180}, {0, 180}, rest},
		{{90, 180}, {270, 0}, {0, 90}, {270, 180}},
		{{0, 90}, {90, 270}, {90, 270}, {0, 270}},
	},
	// 2
	{
		{{90, 180}, {90, 270}, {90, 270}, {180, 270}},
		{{0, 90}, {90, 270}, {180, 270}, {0, 180}},
		{{90, 180}, {90, 270}, {0, 270}, {0, 180}},
		{{0, 180}, {90, 180}, {90, 270}, {0, 270}},
		{{0, 180}, {0, 90}, {90, 270}, {180, 270}},
		{{0, 90}, {90, 270}, {90, 270}, {0, 270}},
	},
	// 3
	{
		{{90, 180}, {90, 270}, {90, 270}, {180, 270}},
		{{0, 90}, {90, 270}, {180, 270}, {0, 180}},
		{rest, {90, 180}, {0, 270}, {0, 180}},
		{rest, {0, 90}, {180, 270}, {0, 180}},
		{{90, 180}, {90, 270}, {0, 270}, {0, 180}},
		{{0, 90}, {90, 270}, {90, 270}, {0, 270}},
	},
	// 4
	{
		{{90, 180}, {180, 270}, {180, 90}, {180, 270}},
		{{0, 180}, {0, 180}, {0, 180}, {0, 180}},
		{{0, 180}, {0, 90}, {0, 270}, {0, 180}},
		{{0, 90}, {90, 270}, {180, 270}, {0, 180}},
		{rest, rest, {0, 180}, {0, 180}},
		{rest, rest, {0, 90}, {0, 270}},
	},
	// 5
	{
		{{180, 90}, {270, 90}, {270, 90}, {270, 180}},
		{{0, 180}, {180, 90}, {270, 90}, {0, 270}},
		{{0, 180}, {0, 90}, {270, 90}, {270, 180}},
		{{0, 90}, {270, 90}, {270, 180}, {0, 180}},
		{{180, 90}, {270, 90}, {0, 270}, {0, 180}},
		{{0, 90}, {270, 90}, {270, 90}, {0, 270}},
	},
	// 6
	{
		{{180, 90}, {180, 270}, rest, rest},
		{{180, 0}, {180, 0}, rest, rest},
		{{180, 0}, {0, 90}, {270, 90}, {180, 270}},
		{{180, 0}, {180, 90}, {180, 270}, {180, 0}},
		{{180, 0}, {0, 90}, {270, 0}, {180, 0}},
		{{0, 90}, {270, 90}, {270, 90}, {270, 0}},
	},
	// 7
	{
		{{90, 180}, {90, 270}, {90, 270}, {180, 270}},
		{{0, 90}, {90, 270}, {180, 270}, {0, 180}},
		{rest, rest, {0, 180}, {0, 180}},
		{rest, rest, {0, 180}, {0, 180}},
		{rest, rest, {0, 180}, {0, 180}},
		{rest, rest, {0, 90}, {0, 270}},
	},
	// 8
	{
		{{90, 180}, {90, 270}, {90, 270}, {180, 270}},
		{{0, 180}, {90, 180}, {180, 270}, {0, 180}},
		{{0, 180}, {0, 90}, {0, 270}, {0, 180}},
		{{0, 180}, {90, 180}, {180, 270}, {0, 180}},
		{{0, 180}, {0, 90}, {0, 270}, {0, 180}},
		{{0, 90}, {90, 270}, {90, 270}, {0, 270}},
	},
	// 9
	{
		{{90, 180}, {90, 270}, {90, 270}, {180, 270}},
		{{0, 180}, {90, 180}, {180, 270}, {0, 180}},
		{{0, 180}, {0, 90}, {0, 270}, {0, 180}},
		{{0, 90}, {90, 270}, {180, 270}, {0, 180}},
		{rest, rest, {0, 180}, {0, 180}},
		{rest, rest, {0, 90}, {0, 270}},
	},
}
