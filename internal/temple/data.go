package temple

// RankCost holds the resources locked inside one Divine Temple hero rank.
type RankCost struct {
	Name        string
	Gems        int64
	Spiritveins int64
	Crystals    int64
	Stellars    int64
}

// LevelCost holds the total resources a temple level requires.
type LevelCost struct {
	Level       int
	Gems        int64
	Spiritveins int64
}

// Hero ranks in progression order. Resource values are what retiring one
// hero of that rank refunds toward the temple.
var rankCosts = []RankCost{
	{Name: "origin", Gems: 5, Spiritveins: 197_236, Crystals: 420_000, Stellars: 821_540},
	{Name: "surge", Gems: 12, Spiritveins: 474_436, Crystals: 1_010_000, Stellars: 1_976_540},
	{Name: "chaos", Gems: 21, Spiritveins: 830_836, Crystals: 1_760_000, Stellars: 3_461_540},
	{Name: "core", Gems: 32, Spiritveins: 1_266_436, Crystals: 2_680_000, Stellars: 5_276_540},
	{Name: "polystar", Gems: 45, Spiritveins: 1_781_236, Crystals: 3_780_000, Stellars: 7_421_540},
	{Name: "nirvana", Gems: 60, Spiritveins: 2_400_536, Crystals: 5_030_000, Stellars: 10_000_490},
}

var levelCosts = []LevelCost{
	{Level: 1, Gems: 5, Spiritveins: 197_236},
	{Level: 2, Gems: 15, Spiritveins: 591_708},
	{Level: 3, Gems: 34, Spiritveins: 1_343_344},
	{Level: 4, Gems: 54, Spiritveins: 2_136_108},
	{Level: 5, Gems: 75, Spiritveins: 2_966_180},
	{Level: 6, Gems: 98, Spiritveins: 3_876_980},
	{Level: 7, Gems: 123, Spiritveins: 4_866_216},
	{Level: 8, Gems: 151, Spiritveins: 5_975_780},
	{Level: 9, Gems: 183, Spiritveins: 7_242_216},
	{Level: 10, Gems: 217, Spiritveins: 8_587_852},
	{Level: 11, Gems: 256, Spiritveins: 10_157_552},
	{Level: 12, Gems: 312, Spiritveins: 12_374_388},
	{Level: 13, Gems: 372, Spiritveins: 14_774_924},
	{Level: 14, Gems: 443, Spiritveins: 17_611_060},
	{Level: 15, Gems: 520, Spiritveins: 20_658_732},
	{Level: 16, Gems: 612, Spiritveins: 24_325_704},
	{Level: 17, Gems: 766, Spiritveins: 30_421_048},
	{Level: 18, Gems: 890, Spiritveins: 35_354_456},
	{Level: 19, Gems: 1044, Spiritveins: 41_449_800},
	{Level: 20, Gems: 1104, Spiritveins: 43_850_336},
	{Level: 21, Gems: 1258, Spiritveins: 49_945_680},
	{Level: 22, Gems: 1532, Spiritveins: 60_842_096},
}

// MaxLevel is the highest temple level with known costs.
const MaxLevel = 22

// Ranks returns the hero ranks in progression order.
func Ranks() []RankCost {
	out := make([]RankCost, len(rankCosts))
	copy(out, rankCosts)
	return out
}
