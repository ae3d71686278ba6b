// Package scraper provides pluggable celebrity data providers.
//
// A Provider hands the persona builder its raw input: name, profession, age,
// representative works, social posts, and interview quotes. The Canned
// provider in this package returns static data for a small set of known
// identifiers and a generic template for everyone else. It is a stand-in
// data source, not a crawler; scraping a real platform would mean
// implementing Provider against that platform's API and its terms of use.
package scraper

import (
	"context"
	"fmt"

	"github.com/staragent/staragent-go/pkg/persona"
)

// Provider defines the interface for celebrity data sources.
type Provider interface {
	// Fetch returns the raw data record for a celebrity name.
	Fetch(ctx context.Context, name string) (*persona.RawData, error)
}

// Canned is a data provider backed by static records.
type Canned struct{}

// NewCanned creates a canned data provider.
func NewCanned() *Canned {
	return &Canned{}
}

// Fetch returns the canned record for a known celebrity, or a generic
// template populated with the given name.
func (c *Canned) Fetch(_ context.Context, name string) (*persona.RawData, error) {
	switch name {
	case "赵丽颖":
		return zhaoLiyingData(), nil
	case "测试明星":
		return sampleData(), nil
	default:
		return genericData(name), nil
	}
}

func zhaoLiyingData() *persona.RawData {
	return &persona.RawData{
		Name:       "赵丽颖",
		Profession: "演员",
		Age:        "30+",
		Works:      []string{"花千骨", "楚乔传", "知否知否应是绿肥红瘦", "有翡"},
		Posts: []string{
			"感谢大家对我的支持，我会继续努力演绎好每一个角色！",
			"今天拍摄很顺利，剧组氛围特别好～",
			"看到粉丝们的留言很感动，你们是我前进的动力",
			"新剧马上就要和大家见面了，期待你们的反馈",
			"保持真诚，用心演戏，这就是我的态度",
			"谢谢剧组的每一位工作人员，大家辛苦了",
			"希望我的作品能给大家带来快乐和感动",
			"感恩生活中的每一个美好瞬间",
			"演员这个职业让我体验了不同的人生，很幸福",
			"继续加油，为了更好的明天！",
		},
		Interviews: []string{
			"我觉得演员最重要的是真诚地对待每一个角色",
			"粉丝们的支持让我更加坚定自己的选择",
			"每个角色都有它独特的魅力，我很享受创作的过程",
			"我相信努力总会有回报，只要坚持不懈",
			"希望能够通过作品传递正能量给大家",
		},
	}
}

func sampleData() *persona.RawData {
	return &persona.RawData{
		Name:       "测试明星",
		Profession: "演员/歌手",
		Age:        "28",
		Works:      []string{"作品一", "作品二", "作品三"},
		Posts: []string{
			"今天天气真好，心情也变好了～",
			"感谢所有支持我的朋友们！",
			"新作品正在筹备中，敬请期待",
			"努力工作的同时也要享受生活",
			"感恩每一天，珍惜当下",
		},
		Interviews: []string{
			"我认为真诚是最重要的品质",
			"艺术创作需要用心去感受",
			"希望能够给大家带来更多好作品",
		},
	}
}

func genericData(name string) *persona.RawData {
	return &persona.RawData{
		Name:       name,
		Profession: "艺人",
		Age:        "",
		Works:      []string{},
		Posts: []string{
			fmt.Sprintf("大家好，我是%s，很高兴在这里和大家交流！", name),
			"感谢大家的支持和喜爱",
			"会继续努力带来更好的作品",
			"希望每个人都开心快乐",
			"感恩有你们的陪伴",
		},
		Interviews: []string{
			"我觉得用心做好每一件事很重要",
			"感谢所有支持我的人",
			"希望能够通过作品传递美好",
		},
	}
}
