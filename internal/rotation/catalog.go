package rotation

import "fmt"

// Item is one catalog entry. Tables of Items mirror the game's wiki data
// and are edited by hand when the game changes.
type Item struct {
	ID          string   `json:"id"`
	Code        int      `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Cost        int      `json:"cost,omitempty"`
	Quantity    Quantity `json:"quantity"`
}

// Quantity is the inclusive stack size range the shop sells an item in.
type Quantity struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (q Quantity) String() string {
	if q.Min == q.Max {
		return fmt.Sprintf("%d", q.Min)
	}
	return fmt.Sprintf("%d-%d", q.Min, q.Max)
}

func one() Quantity { return Quantity{Min: 1, Max: 1} }

// islandMap is stocked by the merchant every day.
var islandMap = Item{
	ID:          "uncharted-island-map",
	Code:        33,
	Name:        "Uncharted island map",
	Description: "Lets you visit an uncharted island with Deep Sea Fishing or Sailing supplies.",
	Cost:        800_000,
	Quantity:    one(),
}

// commonStock is the pool slots A and B both draw from, in game order.
var commonStock = [...]Item{
	{ID: "gift-for-the-reaper", Code: 1, Name: "Gift for the Reaper", Description: "Adds reaper points or reroll tokens.", Cost: 1_250_000, Quantity: Quantity{Min: 1, Max: 5}},
	{ID: "broken-fishing-rod", Code: 2, Name: "Broken fishing rod", Description: "Hand it in at the Fishing Guild for fishing experience.", Cost: 50_000, Quantity: one()},
	{ID: "barrel-of-bait", Code: 3, Name: "Barrel of bait", Description: "Attracts more fish to a fishing spot for ten minutes.", Cost: 50_000, Quantity: one()},
	{ID: "anima-crystal", Code: 4, Name: "Anima crystal", Description: "Gives Divination experience and a chance at memory strands.", Cost: 150_000, Quantity: one()},
	{ID: "small-goebie-burial-charm", Code: 5, Name: "Small goebie burial charm", Description: "Bury it for a small amount of Prayer experience.", Cost: 50_000, Quantity: one()},
	{ID: "goebie-burial-charm", Code: 6, Name: "Goebie burial charm", Description: "Bury it for Prayer experience.", Cost: 100_000, Quantity: one()},
	{ID: "menaphite-gift-offering-small", Code: 7, Name: "Menaphite gift offering (small)", Description: "Open it for a small stack of random items.", Cost: 100_000, Quantity: one()},
	{ID: "menaphite-gift-offering-medium", Code: 8, Name: "Menaphite gift offering (medium)", Description: "Open it for a stack of random items.", Cost: 300_000, Quantity: one()},
	{ID: "shattered-anima", Code: 9, Name: "Shattered anima", Description: "Exchange at the Rush of Blood for Slayer rewards.", Cost: 750_000, Quantity: Quantity{Min: 500_000, Max: 2_000_000}},
	{ID: "dnd-token-daily", Code: 10, Name: "Distraction & Diversion reset token (daily)", Description: "Resets a daily Distraction or Diversion.", Cost: 250_000, Quantity: one()},
	{ID: "sacred-clay", Code: 11, Name: "Sacred clay (Deep Sea Fishing)", Description: "Shapes into a tool that improves Deep Sea Fishing catches.", Cost: 600_000, Quantity: one()},
	{ID: "livid-plant", Code: 12, Name: "Livid plant (Deep Sea Fishing)", Description: "Gives a one-hour boost to Deep Sea Fishing spot chances.", Cost: 1_000_000, Quantity: one()},
	{ID: "slayer-vip-coupon", Code: 13, Name: "Slayer VIP Coupon", Description: "Grants a Slayer VIP ticket.", Cost: 200_000, Quantity: one()},
	{ID: "silverhawk-down", Code: 14, Name: "Silverhawk down", Description: "Refuels silverhawk boots.", Cost: 1_500_000, Quantity: Quantity{Min: 50, Max: 100}},
	{ID: "unstable-air-rune", Code: 15, Name: "Unstable air rune", Description: "Used to make a powerful elemental staff.", Cost: 250_000, Quantity: one()},
	{ID: "advanced-pulse-core", Code: 16, Name: "Advanced pulse core", Description: "Grants bonus experience in a skill of your choice.", Cost: 800_000, Quantity: one()},
	{ID: "tangled-fishbowl", Code: 17, Name: "Tangled fishbowl", Description: "Gives a one-hour Fishing experience boost.", Cost: 50_000, Quantity: one()},
	{ID: "unfocused-damage-enhancer", Code: 18, Name: "Unfocused damage enhancer", Description: "Turns into a boost for a combat style when focused.", Cost: 500_000, Quantity: one()},
	{ID: "horn-of-honour", Code: 19, Name: "Horn of honour", Description: "Gives Barbarian Assault honour points.", Cost: 1_000_000, Quantity: Quantity{Min: 1, Max: 2}},
}

// rareStock is the pool slot C draws from, in game order.
var rareStock = [...]Item{
	{ID: "taijitu", Code: 20, Name: "Taijitu", Description: "Trade for rewards at the Evil Tree or Shooting Star shops.", Cost: 800_000, Quantity: Quantity{Min: 3, Max: 5}},
	{ID: "large-goebie-burial-charm", Code: 21, Name: "Large goebie burial charm", Description: "Bury it for a large amount of Prayer experience.", Cost: 150_000, Quantity: one()},
	{ID: "menaphite-gift-offering-large", Code: 22, Name: "Menaphite gift offering (large)", Description: "Open it for a large stack of random items.", Cost: 500_000, Quantity: one()},
	{ID: "dnd-token-weekly", Code: 23, Name: "Distraction & Diversion reset token (weekly)", Description: "Resets a weekly Distraction or Diversion.", Cost: 400_000, Quantity: one()},
	{ID: "dnd-token-monthly", Code: 24, Name: "Distraction & Diversion reset token (monthly)", Description: "Resets a monthly Distraction or Diversion.", Cost: 1_000_000, Quantity: one()},
	{ID: "dungeoneering-wildcard", Code: 25, Name: "Dungeoneering Wildcard", Description: "Skips a Sinkhole or gives Dungeoneering tokens.", Cost: 400_000, Quantity: one()},
	{ID: "message-in-a-bottle", Code: 26, Name: "Message in a bottle", Description: "Unlocks a clue about Deep Sea Fishing.", Cost: 200_000, Quantity: one()},
	{ID: "crystal-triskelion", Code: 27, Name: "Crystal triskelion", Description: "Open the treasure chest at Rellekka for an item.", Cost: 2_000_000, Quantity: one()},
	{ID: "starved-ancient-effigy", Code: 28, Name: "Starved ancient effigy", Description: "Gives experience in two random skills once nourished.", Cost: 1_000_000, Quantity: one()},
	{ID: "deathtouched-dart", Code: 29, Name: "Deathtouched dart", Description: "Instantly kills most monsters.", Cost: 5_000_000, Quantity: one()},
	{ID: "harmonic-dust", Code: 30, Name: "Harmonic dust", Description: "Used to charge harmonised crystal tools.", Cost: 2_000, Quantity: Quantity{Min: 500, Max: 1000}},
	{ID: "unfocused-reward-enhancer", Code: 31, Name: "Unfocused reward enhancer", Description: "Focus it to boost rewards from a chosen activity.", Cost: 500_000, Quantity: one()},
	{ID: "dragonkin-lamp", Code: 32, Name: "Dragonkin lamp", Description: "Gives experience in a skill of your choice.", Cost: 250_000, Quantity: one()},
}

// runeStock is the full Rune Goldberg Machine rune table, in game order.
var runeStock = [...]Item{
	{ID: "air", Code: 556, Name: "Air rune", Quantity: one()},
	{ID: "water", Code: 555, Name: "Water rune", Quantity: one()},
	{ID: "earth", Code: 557, Name: "Earth rune", Quantity: one()},
	{ID: "fire", Code: 554, Name: "Fire rune", Quantity: one()},
	{ID: "dust", Code: 4696, Name: "Dust rune", Quantity: one()},
	{ID: "lava", Code: 4699, Name: "Lava rune", Quantity: one()},
	{ID: "mist", Code: 4695, Name: "Mist rune", Quantity: one()},
	{ID: "mud", Code: 4698, Name: "Mud rune", Quantity: one()},
	{ID: "smoke", Code: 4697, Name: "Smoke rune", Quantity: one()},
	{ID: "steam", Code: 4694, Name: "Steam rune", Quantity: one()},
	{ID: "mind", Code: 558, Name: "Mind rune", Quantity: one()},
	{ID: "body", Code: 559, Name: "Body rune", Quantity: one()},
	{ID: "cosmic", Code: 564, Name: "Cosmic rune", Quantity: one()},
	{ID: "chaos", Code: 562, Name: "Chaos rune", Quantity: one()},
	{ID: "nature", Code: 561, Name: "Nature rune", Quantity: one()},
	{ID: "law", Code: 563, Name: "Law rune", Quantity: one()},
	{ID: "death", Code: 560, Name: "Death rune", Quantity: one()},
	{ID: "astral", Code: 9075, Name: "Astral rune", Quantity: one()},
	{ID: "blood", Code: 565, Name: "Blood rune", Quantity: one()},
	{ID: "soul", Code: 566, Name: "Soul rune", Quantity: one()},
}
