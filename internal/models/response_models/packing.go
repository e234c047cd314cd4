package response_models

import "fmt"

type PackingItem struct {
	Item string `json:"item"`
	Note string `json:"note"`
}

// PackingList has a fixed set of six categories; every key is present in
// the serialized form even when empty.
type PackingList struct {
	Clothing      []PackingItem `json:"clothing"`
	Toiletries    []PackingItem `json:"toiletries"`
	Electronics   []PackingItem `json:"electronics"`
	Health        []PackingItem `json:"health"`
	Documents     []PackingItem `json:"documents"`
	Miscellaneous []PackingItem `json:"miscellaneous"`
}

// Normalize replaces nil category slices so JSON output always carries all
// six keys as arrays.
func (p *PackingList) Normalize() {
	for _, cat := range []*[]PackingItem{
		&p.Clothing, &p.Toiletries, &p.Electronics, &p.Health, &p.Documents, &p.Miscellaneous,
	} {
		if *cat == nil {
			*cat = []PackingItem{}
		}
	}
}

func (p *PackingList) Validate() error {
	total := len(p.Clothing) + len(p.Toiletries) + len(p.Electronics) +
		len(p.Health) + len(p.Documents) + len(p.Miscellaneous)
	if total == 0 {
		return fmt.Errorf("packing list is empty")
	}
	for _, items := range [][]PackingItem{
		p.Clothing, p.Toiletries, p.Electronics, p.Health, p.Documents, p.Miscellaneous,
	} {
		for _, item := range items {
			if item.Item == "" {
				return fmt.Errorf("packing item with empty name")
			}
		}
	}
	return nil
}
