package main

import (
	"context"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/sh5080/ansan-chatbot-go/pkg/configs"
	_interface "github.com/sh5080/ansan-chatbot-go/pkg/interfaces"
	service "github.com/sh5080/ansan-chatbot-go/pkg/services"
	constants "github.com/sh5080/ansan-chatbot-go/pkg/types"
	model "github.com/sh5080/ansan-chatbot-go/pkg/types/models"
)

var (
	cacheDriver string
	language    string
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "menuctl",
		Short:         "안산대학교 식단 챗봇 운영 도구",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cacheDriver, "cache", "", "캐시 드라이버 재정의 (redis, dynamodb, memory)")
	root.PersistentFlags().StringVar(&language, "lang", string(model.LanguageKorean), "언어 코드 (ko-KO, en-US)")

	root.AddCommand(newMenuCmd(), newAskCmd())
	return root
}

func newMenuCmd() *cobra.Command {
	var cafeteriaName string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "오늘의 식단 블록을 출력합니다",
		RunE: func(cmd *cobra.Command, args []string) error {
			cafeteria, ok := model.ParseCafeteria(cafeteriaName)
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownCafeteria, cafeteriaName)
			}
			lang, err := parseLanguage()
			if err != nil {
				return err
			}

			services, err := buildServices(cmd.Context())
			if err != nil {
				return err
			}

			card, err := services.MenuService.FetchMenu(cmd.Context(), cafeteria, lang)
			if err != nil {
				return err
			}
			return printJSON(cmd, card)
		},
	}

	cmd.Flags().StringVar(&cafeteriaName, "cafeteria", "", "식당 (student-cafeteria 또는 학생 식당 형식)")
	_ = cmd.MarkFlagRequired("cafeteria")
	return cmd
}

func newAskCmd() *cobra.Command {
	var text, event string

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "대화 처리 결과를 JSON으로 출력합니다",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (text == "") == (event == "") {
				return fmt.Errorf("--text와 --event 중 하나만 지정해야 합니다")
			}
			lang, err := parseLanguage()
			if err != nil {
				return err
			}

			services, err := buildServices(cmd.Context())
			if err != nil {
				return err
			}

			if text != "" {
				result, err := services.DialogService.DetectIntentByText(cmd.Context(), text, lang)
				if err != nil {
					return err
				}
				return printJSON(cmd, result)
			}

			result, err := services.DialogService.DetectIntentByEvent(cmd.Context(), event, lang)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "사용자 메시지")
	cmd.Flags().StringVar(&event, "event", "", "포스트백 이벤트 이름")
	return cmd
}

func parseLanguage() (model.LanguageCode, error) {
	lang := model.LanguageCode(language)
	if !lang.IsValid() {
		return "", fmt.Errorf("지원하지 않는 언어 코드: %s", language)
	}
	return lang, nil
}

func buildServices(ctx context.Context) (*_interface.ServiceContainer, error) {
	config, err := configs.Load()
	if err != nil {
		return nil, err
	}
	if cacheDriver != "" {
		config.Cache.Driver = cacheDriver
	}
	return service.NewServiceContainer(ctx, config)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := jsoniter.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
