package sonarr

import "encoding/json"

// overlay sets the fields this service owns onto a raw series resource and leaves the rest as Sonarr sent it
func overlay(current map[string]json.RawMessage, series Series) (map[string]json.RawMessage, error) {
	set := func(key string, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		current[key] = b
		return nil
	}

	tags := series.Tags
	if tags == nil {
		tags = []int{}
	}

	if err := set("monitored", series.Monitored); err != nil {
		return nil, err
	}
	if series.SeriesType != "" {
		if err := set("seriesType", series.SeriesType); err != nil {
			return nil, err
		}
	}
	if err := set("tags", tags); err != nil {
		return nil, err
	}

	raw, ok := current["seasons"]
	if !ok {
		return current, nil
	}

	var seasons []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &seasons); err != nil {
		return nil, err
	}

	for _, season := range seasons {
		var number int
		if err := json.Unmarshal(season["seasonNumber"], &number); err != nil {
			return nil, err
		}

		want, ok := series.Season(number)
		if !ok {
			continue
		}

		b, err := json.Marshal(want.Monitored)
		if err != nil {
			return nil, err
		}
		season["monitored"] = b
	}

	if err := set("seasons", seasons); err != nil {
		return nil, err
	}
	return current, nil
}
