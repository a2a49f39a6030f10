package fork

type ProcessOpt = func(p *Process)

// WithEnv добавляет переменные окружения вида KEY=VALUE процессу
func WithEnv(env ...string) ProcessOpt {
	return func(p *Process) {
		p.cmd.Env = append(p.cmd.Env, env...)
	}
}

// WithArgs добавляет процессу аргументы командной строки
func WithArgs(args ...string) ProcessOpt {
	return func(p *Process) {
		p.cmd.Args = append(p.cmd.Args, args...)
	}
}

// WithDir задаёт рабочую директорию процесса
func WithDir(dir string) ProcessOpt {
	return func(p *Process) {
		p.cmd.Dir = dir
	}
}
