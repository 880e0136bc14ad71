package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const cityCodesScheme = "city_codes://"

// Adcodes for the most commonly queried cities, keyed by province.
var cityCodes = map[string]map[string]string{
	"北京": {"北京": "110000"},
	"上海": {"上海": "310000"},
	"广东": {"广州": "440100", "深圳": "440300", "珠海": "440400"},
	"江苏": {"南京": "320100", "苏州": "320500", "无锡": "320200"},
	"浙江": {"杭州": "330100", "宁波": "330200", "温州": "330300"},
}

// HandleCityCodes serves the city_codes://{province} resource with the known
// adcodes for that province.
func HandleCityCodes(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	province := strings.TrimPrefix(req.Params.URI, cityCodesScheme)

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/plain",
				Text:     cityCodesText(province),
			},
		},
	}, nil
}

func cityCodesText(province string) string {
	codes, ok := cityCodes[province]
	if !ok {
		provinces := make([]string, 0, len(cityCodes))
		for name := range cityCodes {
			provinces = append(provinces, name)
		}
		sort.Strings(provinces)
		return fmt.Sprintf("未找到 %s 的城市代码信息。可用的省份有: %s", province, strings.Join(provinces, ", "))
	}

	cities := make([]string, 0, len(codes))
	for city := range codes {
		cities = append(cities, city)
	}
	sort.Strings(cities)

	var b strings.Builder
	fmt.Fprintf(&b, "%s省主要城市代码:\n", province)
	for _, city := range cities {
		fmt.Fprintf(&b, "- %s: %s\n", city, codes[city])
	}
	return b.String()
}
