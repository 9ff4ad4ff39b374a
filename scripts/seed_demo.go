// 演示数据导入脚本
//
// 建库后执行一次，写入示例课程、章节和一份八题的通用能力测验，
// 已经有数据时不会重复写入。
//
// 用法: go run scripts/seed_demo.go

package main

import (
	"encoding/json"
	"learnify_backend/internal/config"
	"learnify_backend/internal/model"
	"learnify_backend/pkg/database"
	"learnify_backend/pkg/logger"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count > 0 {
		log.Println("课程表已有数据，跳过导入")
		return
	}

	courses := []model.Course{
		{
			Title:       "逻辑思维入门",
			Description: "条件推理、序列规律与基础算法思想",
			Category:    "logic",
			Icon:        "brain",
			Order:       1,
			IsPublished: true,
			Modules: []model.CourseModule{
				{Title: "命题与推理", Summary: "从日常语言到形式推理", Duration: 25, Order: 1},
				{Title: "数列与规律", Summary: "找规律题的通用套路", Duration: 30, Order: 2},
			},
		},
		{
			Title:       "数据处理基础",
			Description: "表格、统计量与图表阅读",
			Category:    "data",
			Icon:        "chart",
			Order:       2,
			IsPublished: true,
			Modules: []model.CourseModule{
				{Title: "认识数据", Summary: "数据类型与度量", Duration: 20, Order: 1},
				{Title: "图表阅读", Summary: "从图表中提取结论", Duration: 25, Order: 2},
			},
		},
		{
			Title:       "Web 开发初步",
			Description: "网页是怎么跑起来的",
			Category:    "web",
			Icon:        "globe",
			Order:       3,
			IsPublished: true,
			Modules: []model.CourseModule{
				{Title: "HTTP 与浏览器", Summary: "一次请求的完整旅程", Duration: 30, Order: 1},
			},
		},
		{
			Title:       "计算机通识",
			Description: "程序、内存与操作系统常识",
			Category:    "fundamentals",
			Icon:        "cpu",
			Order:       4,
			IsPublished: true,
			Modules: []model.CourseModule{
				{Title: "程序如何执行", Summary: "从源码到进程", Duration: 30, Order: 1},
				{Title: "存储层次", Summary: "寄存器、内存与磁盘", Duration: 20, Order: 2},
			},
		},
	}
	if err := db.Create(&courses).Error; err != nil {
		log.Fatalf("写入课程失败: %v", err)
	}

	now := time.Now()
	exam := model.Exam{
		Title:       "通用能力测验",
		Description: "八道单选题，限时两小时，正确率达到 50% 通过",
		IsPublished: true,
		PublishedAt: &now,
	}
	if err := db.Create(&exam).Error; err != nil {
		log.Fatalf("写入测验失败: %v", err)
	}

	type q struct {
		prompt  string
		options []model.ExamOption
		correct string
		explain string
	}
	questions := []q{
		{
			prompt: "数列 2, 6, 12, 20, 30 的下一项是？",
			options: []model.ExamOption{
				{Number: "1", Text: "36"}, {Number: "2", Text: "42"},
				{Number: "3", Text: "40"}, {Number: "4", Text: "44"},
			},
			correct: "2",
			explain: "相邻差值依次为 4, 6, 8, 10，下一个差值是 12。",
		},
		{
			prompt: "如果所有的 A 都是 B，有些 B 是 C，那么下列哪项一定成立？",
			options: []model.ExamOption{
				{Number: "1", Text: "有些 A 是 C"}, {Number: "2", Text: "所有的 C 都是 B"},
				{Number: "3", Text: "无法确定 A 与 C 的关系"}, {Number: "4", Text: "没有 A 是 C"},
			},
			correct: "3",
			explain: "两个前提无法建立 A 与 C 之间的必然联系。",
		},
		{
			prompt: "一组数 3, 7, 8, 5, 12, 14, 21, 13, 18 的中位数是？",
			options: []model.ExamOption{
				{Number: "1", Text: "12"}, {Number: "2", Text: "13"},
				{Number: "3", Text: "11"}, {Number: "4", Text: "14"},
			},
			correct: "1",
			explain: "排序后居中的数是 12。",
		},
		{
			prompt: "HTTP 状态码 404 表示？",
			options: []model.ExamOption{
				{Number: "1", Text: "服务器内部错误"}, {Number: "2", Text: "资源不存在"},
				{Number: "3", Text: "未授权"}, {Number: "4", Text: "请求成功"},
			},
			correct: "2",
			explain: "404 Not Found：请求的资源在服务器上不存在。",
		},
		{
			prompt: "1 GB 等于多少 MB？",
			options: []model.ExamOption{
				{Number: "1", Text: "100"}, {Number: "2", Text: "512"},
				{Number: "3", Text: "1024"}, {Number: "4", Text: "2048"},
			},
			correct: "3",
			explain: "1 GB = 1024 MB。",
		},
		{
			prompt: "把 19 个苹果平均分给 5 个人，每人最多分到几个？",
			options: []model.ExamOption{
				{Number: "1", Text: "3"}, {Number: "2", Text: "4"},
				{Number: "3", Text: "5"}, {Number: "4", Text: "2"},
			},
			correct: "1",
			explain: "19 ÷ 5 = 3 余 4。",
		},
		{
			prompt: "下列哪项不是浏览器？",
			options: []model.ExamOption{
				{Number: "1", Text: "Chrome"}, {Number: "2", Text: "Firefox"},
				{Number: "3", Text: "Nginx"}, {Number: "4", Text: "Safari"},
			},
			correct: "3",
			explain: "Nginx 是 Web 服务器，不是浏览器。",
		},
		{
			prompt: "甲比乙高，丙比甲高，丁比丙矮但比甲高，四人中最高的是？",
			options: []model.ExamOption{
				{Number: "1", Text: "甲"}, {Number: "2", Text: "乙"},
				{Number: "3", Text: "丙"}, {Number: "4", Text: "丁"},
			},
			correct: "3",
			explain: "高度顺序为 丙 > 丁 > 甲 > 乙。",
		},
	}

	rows := make([]model.ExamQuestion, 0, len(questions))
	for i, item := range questions {
		opts, err := json.Marshal(item.options)
		if err != nil {
			log.Fatalf("序列化选项失败: %v", err)
		}
		rows = append(rows, model.ExamQuestion{
			ExamID:        exam.ID,
			Prompt:        item.prompt,
			Options:       opts,
			CorrectAnswer: item.correct,
			Explanation:   item.explain,
			Order:         i + 1,
		})
	}
	if err := db.Create(&rows).Error; err != nil {
		log.Fatalf("写入题目失败: %v", err)
	}

	log.Printf("导入完成：%d 门课程，1 份测验（%d 题）", len(courses), len(rows))
}
