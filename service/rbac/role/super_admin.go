package role

// SuperAdmin 全ユーザーを監視できる管理者ロール
const SuperAdmin = "super_admin"
