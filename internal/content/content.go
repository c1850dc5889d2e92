// Package content holds the static display catalogs of the alumni site:
// notices (the buzzboard), memories (the memory tree) and sharings
// (testimonials). The data is hardcoded display content with no persistence
// behavior; the read side is the whole interface.
package content

// Notice is one buzzboard announcement.
type Notice struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Body     string `json:"body"`
}

// Memory is one memory-tree entry: a remembered moment from school years.
type Memory struct {
	ID     int    `json:"id"`
	Author string `json:"author"`
	Batch  string `json:"batch"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Sharing is one alumni testimonial.
type Sharing struct {
	ID     int    `json:"id"`
	Author string `json:"author"`
	Batch  string `json:"batch"`
	Quote  string `json:"quote"`
}

// Catalog bundles the static content served by the content endpoints.
type Catalog struct {
	notices  []Notice
	memories []Memory
	sharings []Sharing
}

// NewCatalog constructs the catalog with the built-in display data.
func NewCatalog() *Catalog {
	return &Catalog{
		notices:  notices,
		memories: memories,
		sharings: sharings,
	}
}

// Notices returns all buzzboard notices.
func (c *Catalog) Notices() []Notice {
	return c.notices
}

// Memories returns all memory-tree entries.
func (c *Catalog) Memories() []Memory {
	return c.memories
}

// Sharings returns all testimonials.
func (c *Catalog) Sharings() []Sharing {
	return c.sharings
}

var notices = []Notice{
	{
		ID:       1,
		Title:    "Annual Alumni Meet 2026",
		Date:     "2026-12-19",
		Category: "Events",
		Body:     "The annual alumni meet will be held on campus this December. Registration opens next month.",
	},
	{
		ID:       2,
		Title:    "Mentorship Programme Signups",
		Date:     "2026-09-01",
		Category: "Programmes",
		Body:     "Alumni can now sign up to mentor current students in technology, medicine, design and the arts.",
	},
	{
		ID:       3,
		Title:    "Library Wing Inauguration",
		Date:     "2026-08-15",
		Category: "Campus",
		Body:     "The new library wing, funded by alumni contributions, opens on Independence Day.",
	},
}

var memories = []Memory{
	{
		ID:     1,
		Author: "Arjun Sharma",
		Batch:  "2010",
		Title:  "The old banyan tree",
		Body:   "Most of what I remember about school happened under the banyan tree behind the assembly ground.",
	},
	{
		ID:     2,
		Author: "Priya Patel",
		Batch:  "2012",
		Title:  "Science fair, second place",
		Body:   "We lost first place to a potato battery, and I have never forgotten it.",
	},
}

var sharings = []Sharing{
	{
		ID:     1,
		Author: "Arjun Sharma",
		Batch:  "2010",
		Quote:  "The school taught me to ask why before how. That habit built my career.",
	},
	{
		ID:     2,
		Author: "Priya Patel",
		Batch:  "2012",
		Quote:  "I learned to listen to children here, long before medical school taught me to treat them.",
	},
}
