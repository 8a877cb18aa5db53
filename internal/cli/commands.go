package cli

// Command describes one interpreter command for the help listing.
type Command struct {
	Name        string
	Usage       string
	Description string
}

// Commands returns every command in help order.
func Commands() []Command {
	return []Command{
		// Segmentation
		{
			Name:        "region",
			Usage:       "region <x> <y> [<x> <y> ...]",
			Description: "Grow a region from each seed and trace its perimeters.",
		},
		{
			Name:        "tolerance",
			Usage:       "tolerance [<upper> <step>]",
			Description: "Show or set the seed and step tolerances. Use a single value or one per channel, comma separated.",
		},
		{
			Name:        "blur",
			Usage:       "blur <sigma>",
			Description: "Blur the working image. Affects regions grown afterwards.",
		},
		{
			Name:        "clean",
			Usage:       "clean",
			Description: "Discard all regions and restore the original image.",
		},
		{
			Name:        "sample",
			Usage:       "sample <x> <y>",
			Description: "Print the color of one pixel of the working image, to help choose tolerances.",
		},

		// Perimeters
		{
			Name:        "smooth",
			Usage:       "smooth <factor>",
			Description: "Smooth every perimeter with the configured kernel.",
		},
		{
			Name:        "fillgaps",
			Usage:       "fillgaps",
			Description: "Insert points between perimeter points that are not adjacent.",
		},

		// Output
		{
			Name:        "display",
			Usage:       "display [file]",
			Description: "Draw regions and perimeters over the image and save it.",
		},
		{
			Name:        "zoom",
			Usage:       "zoom <index> [scale] [file]",
			Description: "Save an enlarged crop around one region.",
		},
		{
			Name:        "info",
			Usage:       "info",
			Description: "Print area, bounds, centroid, mean color and perimeter lengths of each region.",
		},
		{
			Name:        "store",
			Usage:       "store <file>",
			Description: "Save regions and perimeters. Files ending in .db or .sqlite are written as SQLite, anything else as text.",
		},

		{
			Name:        "help",
			Usage:       "help",
			Description: "List commands.",
		},
		{
			Name:        "exit",
			Usage:       "exit | quit",
			Description: "Leave the interpreter.",
		},
	}
}
