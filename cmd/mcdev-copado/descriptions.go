package main

const descriptionRoot = `mcdev-copado bundles the helpers that Copado job steps use around the mcdev CLI:
running external commands, normalizing environment variable payloads, and resolving
the deployment target business unit from the persisted mcdev configuration.

Configuration is taken from the environment variables of the job container
(configFilePath, mcdevVersion, installMcdevLocally); flags override them.`

const descriptionExec = `Run one or more shell commands synchronously with inherited standard streams.

Multiple commands are joined with '&&', so the first failing command aborts the
remainder. By default a failure is reported as an error; with --return-status the
exit code of the failed command simply becomes the exit code of this process,
which allows the surrounding pipeline to branch on specific codes.`

const descriptionResolve = `Look up the business unit that is mapped to the given credential name and MID in
the persisted mcdev configuration file and print it as 'credentialName/businessUnit'.

A credential without any business unit mapping prints nothing; zero or multiple
matches for a populated credential are an error.`

const descriptionNormalize = `Read a JSON document of Copado environment variable payloads and replace every
payload with its normalized form: flat lists become name-to-value mappings, and
keys ending in 'Children' are treated as grouped per-child records.`
