package icon

type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Mark
	Favorite
	NotFavorite
	Star
	Trailer
	Search
	Film
	Series
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(╥﹏╥)",
		squares: "■",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "□",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(•_•)",
		squares: "▣",
	},
	Mark: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "*",
		kaomoji: "(x_x)",
		squares: "▪",
	},
	Favorite: {
		emoji:   "❤️",
		nerd:    "",
		plain:   "<3",
		kaomoji: "(♥‿♥)",
		squares: "♥",
	},
	NotFavorite: {
		emoji:   "🤍",
		nerd:    "",
		plain:   "</3",
		kaomoji: "(._.)",
		squares: "♡",
	},
	Star: {
		emoji:   "⭐",
		nerd:    "",
		plain:   "*",
		kaomoji: "(☆▽☆)",
		squares: "★",
	},
	Trailer: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(▷▷)",
		squares: "▶",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(⊙_⊙)",
		squares: "◎",
	},
	Film: {
		emoji:   "🎞️",
		nerd:    "",
		plain:   "[M]",
		kaomoji: "(□_□)",
		squares: "▤",
	},
	Series: {
		emoji:   "📺",
		nerd:    "",
		plain:   "[TV]",
		kaomoji: "(⌐■_■)",
		squares: "▥",
	},
}
