package sunmao

import "fmt"

// AlignAxes forces a shared scale on the selected axis (or both) across
// a group of panels: the union of every member's current limits is
// computed and applied to all of them. Alignment means limit equality
// only; tick placement stays with the backend.
//
// A nil group means the calling panel and its direct children, the
// common case of aligning a row or column just created. A non-nil empty
// group fails with ErrEmptyGroup. Panels with no data on an axis
// contribute nothing to the union but still receive it.
func (p *Panel) AlignAxes(axis Axis, group []*Panel) error {
	if group == nil {
		group = append([]*Panel{p}, p.Children()...)
	}
	if len(group) == 0 {
		return fmt.Errorf("%w: align %s", ErrEmptyGroup, axis)
	}

	axes := []Axis{axis}
	if axis == AxisBoth {
		axes = []Axis{AxisX, AxisY}
	}
	for _, ax := range axes {
		lo, hi, any := 0.0, 0.0, false
		for _, member := range group {
			mlo, mhi, ok := member.surface.Range(ax)
			if !ok {
				continue
			}
			if !any || mlo < lo {
				lo = mlo
			}
			if !any || mhi > hi {
				hi = mhi
			}
			any = true
		}
		if !any {
			continue
		}
		for _, member := range group {
			member.surface.SetRange(ax, lo, hi)
		}
	}
	return nil
}
