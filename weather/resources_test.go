package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("city_codes resource", func() {
	read := func(uri string) string {
		result, err := HandleCityCodes(context.Background(), &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: uri},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Contents).To(HaveLen(1))
		Expect(result.Contents[0].URI).To(Equal(uri))
		Expect(result.Contents[0].MIMEType).To(Equal("text/plain"))
		return result.Contents[0].Text
	}

	It("lists the adcodes of a known province", func() {
		text := read("city_codes://广东")
		Expect(text).To(ContainSubstring("广州: 440100"))
		Expect(text).To(ContainSubstring("深圳: 440300"))
		Expect(text).To(ContainSubstring("珠海: 440400"))
	})

	It("lists available provinces for an unknown one", func() {
		text := read("city_codes://台湾")
		Expect(text).To(ContainSubstring("未找到"))
		Expect(text).To(ContainSubstring("北京"))
		Expect(text).To(ContainSubstring("浙江"))
	})
})
