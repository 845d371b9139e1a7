package service

import (
	"WhaleBot/internal/client"
	"WhaleBot/internal/log"
	"context"
	"fmt"
	"net/http"

	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const questionOfToday = `
query questionOfToday {
    activeDailyCodingChallengeQuestion {
        date
        question {
            title
            titleSlug
            questionFrontendId
        }
    }
}`

const problemURLPrefix = "https://leetcode.com/problems/"

type Question struct {
	Title string
	Url   string
}

type graphQLRequest struct {
	Query string `json:"query"`
}

// GetDailyQuestion 获取力扣每日一题，任何失败都返回 None
func GetDailyQuestion(ctx context.Context, c *client.Client) mo.Option[Question] {
	status, body, err := c.Do(ctx, client.Request{
		Method:  http.MethodPost,
		URL:     c.Endpoints.Leetcode,
		Headers: map[string]string{"User-Agent": client.BrowserUserAgent},
		JSON:    graphQLRequest{Query: questionOfToday},
	})
	if err != nil {
		return mo.None[Question]()
	}
	if status != http.StatusOK {
		log.Log.WithFields(logrus.Fields{
			"status": status,
		}).Error("获取每日一题失败")
		return mo.None[Question]()
	}
	return parseQuestion(body)
}

func parseQuestion(body []byte) mo.Option[Question] {
	if !gjson.ValidBytes(body) {
		log.Log.Error("每日一题响应不是合法 JSON")
		return mo.None[Question]()
	}
	question := gjson.GetBytes(body, "data.activeDailyCodingChallengeQuestion.question")
	id := question.Get("questionFrontendId")
	title := question.Get("title")
	slug := question.Get("titleSlug")
	if !id.Exists() || !title.Exists() || !slug.Exists() {
		log.Log.WithFields(logrus.Fields{
			"body": string(body),
		}).Error("每日一题响应缺少字段")
		return mo.None[Question]()
	}
	return mo.Some(Question{
		Title: fmt.Sprintf("%s. %s", id.String(), title.String()),
		Url:   problemURLPrefix + slug.String(),
	})
}
