// Package domain defines the report aggregates.
package domain

// CountItem is one labeled bucket in an aggregate count.
type CountItem struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// ChartOption is the label/value pair-of-lists shape consumed by the
// frontend chart library.
type ChartOption struct {
	Labels []string `json:"labels"`
	Values []int64  `json:"values"`
}

// OptionFromItems splits count items into the chart shape, preserving order.
func OptionFromItems(items []CountItem) ChartOption {
	option := ChartOption{
		Labels: make([]string, 0, len(items)),
		Values: make([]int64, 0, len(items)),
	}
	for _, item := range items {
		option.Labels = append(option.Labels, item.Name)
		option.Values = append(option.Values, item.Value)
	}
	return option
}
