package asynqserver

import (
	"testing"

	"github.com/nzwalks/backend/internal/config"
	"github.com/nzwalks/backend/internal/queue/task"
	"github.com/nzwalks/backend/internal/worker"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
)

func TestRedisOptions(t *testing.T) {
	var single config.Cache
	single.Type = "redis"
	single.Redis.Address = "localhost:6379"
	assert.Equal(t, asynq.RedisClientOpt{Addr: "localhost:6379"}, RedisOptions(single))

	var cluster config.Cache
	cluster.Type = "redisCluster"
	cluster.RedisCluster.Addresses = []string{"a:7000", "b:7001"}
	assert.Equal(t, asynq.RedisClusterClientOpt{Addrs: []string{"a:7000", "b:7001"}}, RedisOptions(cluster))
}

func TestGetQueues(t *testing.T) {
	mux, queues := getQueues(worker.NewWorkers(worker.Deps{}))

	assert.Equal(t, map[string]int{task.RegionChangedQueueName: 1}, queues)
	h, pattern := mux.Handler(asynq.NewTask(task.RegionChangedTaskName, nil))
	assert.NotNil(t, h)
	assert.Equal(t, task.RegionChangedTaskName, pattern)
}
