// wheelshare はホイール共有サービスのエントリーポイント。
//
// サブコマンド:
//
//	serve       APIサーバーを起動する（デフォルト）
//	migrate     データベースマイグレーションを適用する
//	healthcheck 起動中のサーバーの /health を確認する
package main

import (
	"log/slog"
	"os"

	"github.com/hitoshi/wheelshare/internal/app"
)

func main() {
	if err := app.Run(os.Stdout, os.Args[1:]); err != nil {
		slog.Error("application exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
