// Package catalog holds the built-in organelle question bank and its
// integrity checks. The bank is pure data; behavior lives in internal/game.
package catalog

import "organelle-quiz-service/internal/domain"

// Builtin returns the default organelle bank. Clues are ordered from most
// cryptic to most revealing. To use real diagrams, fill in ImageURL per
// entry and switch the art style setting to images.
func Builtin() []domain.Organelle {
	return []domain.Organelle{
		{
			Name:     "Nucleus",
			Aliases:  []string{"control center"},
			Category: domain.CategoryBoth,
			Emoji:    "🧠",
			Function: "Holds DNA; controls cell activities.",
			Clues: []string{
				"I'm like the principal's office for the cell.",
				"I store the genome—cell's master plan.",
				"I control what the cell does.",
				"I contain the DNA.",
			},
			VisualKey: "nucleus",
		},
		{
			Name:     "Nucleolus",
			Aliases:  []string{"rRNA factory"},
			Category: domain.CategoryBoth,
			Emoji:    "🔴",
			Function: "Builds ribosome pieces (rRNA).",
			Clues: []string{
				"I'm a VIP room inside the principal's office.",
				"I assemble parts used to make protein factories.",
				"I make rRNA and ribosomal subunits.",
			},
			VisualKey: "nucleolus",
		},
		{
			Name:     "Ribosome",
			Aliases:  []string{"ribosomes"},
			Category: domain.CategoryBoth,
			Emoji:    "⚙️",
			Function: "Protein synthesis (reads mRNA).",
			Clues: []string{
				"Tiny chefs that follow a recipe (mRNA).",
				"Some of us float; some of us ride the ER.",
				"We build proteins from amino acids.",
			},
			VisualKey: "ribosome",
		},
		{
			Name:     "Rough Endoplasmic Reticulum",
			Aliases:  []string{"rough er", "rER", "rough endoplasmic reticulum"},
			Category: domain.CategoryBoth,
			Emoji:    "🧵",
			Function: "Folds and modifies proteins; dotted with ribosomes.",
			Clues: []string{
				"A maze of membranes wearing polka-dot ribosomes.",
				"Proteins enter me for folding and finishing.",
				"I'm the 'rough' version of a famous hallway system.",
			},
			VisualKey: "rough-er",
		},
		{
			Name:     "Smooth Endoplasmic Reticulum",
			Aliases:  []string{"smooth er", "sER", "smooth endoplasmic reticulum"},
			Category: domain.CategoryBoth,
			Emoji:    "🥛",
			Function: "Makes lipids; detox; calcium storage.",
			Clues: []string{
				"I'm smooth—no ribosomes on my walls.",
				"I craft lipids and help with detox.",
				"I'm the 'smooth' version of the ER hallways.",
			},
			VisualKey: "smooth-er",
		},
		{
			Name:     "Golgi Apparatus",
			Aliases:  []string{"golgi", "golgi body", "golgi complex"},
			Category: domain.CategoryBoth,
			Emoji:    "📦",
			Function: "Sorts, packages, and ships proteins and lipids.",
			Clues: []string{
				"I slap labels and barcodes on cellular packages.",
				"I modify, sort, and ship molecules in vesicles.",
				"I'm the cell's post office.",
			},
			VisualKey: "golgi",
		},
		{
			Name:     "Lysosome",
			Aliases:  []string{"lysosomes"},
			Category: domain.CategoryAnimalOnly,
			Emoji:    "🧪",
			Function: "Digestive sacs; break down waste and invaders.",
			Clues: []string{
				"I'm the clean-up crew with enzymes.",
				"I digest broken parts and invaders.",
				"Mostly in animal cells.",
			},
			VisualKey: "lysosome",
		},
		{
			Name:     "Peroxisome",
			Aliases:  []string{"peroxisomes"},
			Category: domain.CategoryBoth,
			Emoji:    "🧴",
			Function: "Detoxify harmful byproducts; break down fatty acids.",
			Clues: []string{
				"I bubble with reactions that detox the cell.",
				"I break down fatty acids and neutralize peroxide.",
			},
			VisualKey: "peroxisome",
		},
		{
			Name:     "Mitochondrion",
			Aliases:  []string{"mitochondria", "powerhouse"},
			Category: domain.CategoryBoth,
			Emoji:    "🔋",
			Function: "Cellular respiration; makes ATP (energy).",
			Clues: []string{
				"Students keep calling me the powerhouse… and they're not wrong.",
				"I turn glucose + oxygen into usable ATP.",
				"Double membrane + folded inner cristae.",
			},
			VisualKey: "mitochondrion",
		},
		{
			Name:     "Chloroplast",
			Aliases:  []string{"chloroplasts"},
			Category: domain.CategoryPlantOnly,
			Emoji:    "🌿",
			Function: "Photosynthesis; makes glucose using sunlight.",
			Clues: []string{
				"I'm green and love the sun.",
				"I turn light energy into glucose.",
				"Found in plants (and some protists).",
			},
			VisualKey: "chloroplast",
		},
		{
			Name:     "Cell Membrane",
			Aliases:  []string{"plasma membrane", "membrane"},
			Category: domain.CategoryBoth,
			Emoji:    "🚪",
			Function: "Selectively permeable barrier; maintains homeostasis.",
			Clues: []string{
				"I'm the bouncer—selective about who gets in/out.",
				"Phospholipid bilayer with proteins.",
				"Controls transport: diffusion, osmosis, active transport.",
			},
			VisualKey: "cell-membrane",
		},
		{
			Name:     "Cell Wall",
			Aliases:  []string{"wall"},
			Category: domain.CategoryPlantOnly,
			Emoji:    "🧱",
			Function: "Rigid support and protection outside the membrane.",
			Clues: []string{
				"I keep plant cells sturdy and upright.",
				"Made of cellulose in plants.",
				"Outside the cell membrane.",
			},
			VisualKey: "cell-wall",
		},
		{
			Name:     "Cytoplasm",
			Aliases:  []string{"cytosol"},
			Category: domain.CategoryBoth,
			Emoji:    "🌊",
			Function: "Gel-like interior where organelles sit and reactions happen.",
			Clues: []string{
				"I'm the jelly where everything floats.",
				"Many reactions happen in me.",
				"I fill the cell between membrane and nucleus.",
			},
			VisualKey: "cytoplasm",
		},
		{
			Name:     "Vacuole",
			Aliases:  []string{"central vacuole", "vacuoles"},
			Category: domain.CategoryBoth,
			Emoji:    "💧",
			Function: "Storage of water and materials; big and central in plants.",
			Clues: []string{
				"I'm storage—especially water. Bigger in plants.",
				"I help maintain turgor pressure.",
				"Central version dominates plant cells.",
			},
			VisualKey: "vacuole",
		},
		{
			Name:     "Vesicle",
			Aliases:  []string{"vesicles"},
			Category: domain.CategoryBoth,
			Emoji:    "📫",
			Function: "Small transport bubbles moving cargo around.",
			Clues: []string{
				"Tiny packages for delivery.",
				"I bud from ER/Golgi to move cargo.",
			},
			VisualKey: "vesicle",
		},
		{
			Name:     "Cytoskeleton",
			Aliases:  []string{"microtubules", "microfilaments", "intermediate filaments"},
			Category: domain.CategoryBoth,
			Emoji:    "🕸️",
			Function: "Cell shape, movement, and internal highways.",
			Clues: []string{
				"I'm the scaffolding and the road system.",
				"Microtubules, microfilaments, and more.",
				"I help cells move and divide.",
			},
			VisualKey: "cytoskeleton",
		},
		{
			Name:     "Centrioles",
			Aliases:  []string{"centriole", "centrosome"},
			Category: domain.CategoryAnimalOnly,
			Emoji:    "🎯",
			Function: "Organize spindle fibers during cell division.",
			Clues: []string{
				"I'm the organizer for cell division in animals.",
				"I help pull chromosomes apart.",
			},
			VisualKey: "centrioles",
		},
	}
}
